package root

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"founderos/internal/founder"
	"founderos/internal/ui"
)

func newDayCmd() *cobra.Command {
	var (
		mood   string
		energy int
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Record today's mood, energy, or notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mood != "" && !slices.Contains(founder.Moods, mood) {
				return fmt.Errorf("unknown mood %q (valid: %v)", mood, founder.Moods)
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			changed := false
			if mood != "" {
				a.svc.SetDayMood(mood)
				changed = true
			}
			if cmd.Flags().Changed("energy") {
				a.svc.SetDayEnergy(energy)
				changed = true
			}
			if cmd.Flags().Changed("notes") {
				a.svc.SetDayNotes(notes)
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to record: pass --mood, --energy, or --notes")
			}
			a.flush(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "%s saved for %s\n", ui.IconCheck, a.svc.TodayKey())
			return nil
		},
	}

	cmd.Flags().StringVar(&mood, "mood", "", "mood for today (great, happy, neutral, tired, sad, stressed)")
	cmd.Flags().IntVar(&energy, "energy", 0, "energy level 0-5")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text note for today")
	return cmd
}
