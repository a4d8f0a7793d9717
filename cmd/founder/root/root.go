package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"founderos/internal/ui"
)

const Version = "3.0.0"

var rootCmd = &cobra.Command{
	Use:           "founder",
	Short:         "Founder OS — 365-day founder challenge tracker",
	Long:          "Founder OS tracks a 365-day founder challenge: daily habits, projects and revenue, goals, journal, lifestyle, and focus sessions. State saves locally at once and syncs to a remote document store in the background.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newToggleCmd(),
		newDayCmd(),
		newQuoteCmd(),
		newTimelineCmd(),
		newExportCmd(),
		newImportCmd(),
		newResetCmd(),
		newServeCmd(),
		newMCPCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
