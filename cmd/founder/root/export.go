package root

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"founderos/internal/derive"
	"founderos/internal/ui"
)

func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full document to a JSON backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if output == "" {
				output = fmt.Sprintf("founder-os-backup-%s.json", derive.DateKey(time.Now()))
			}
			if err := os.WriteFile(output, a.svc.Export(), 0o644); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s exported to %s\n", ui.IconCheck, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "backup file path (default founder-os-backup-<date>.json)")
	return cmd
}
