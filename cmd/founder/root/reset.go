package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"founderos/internal/founder"
	"founderos/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe all progress and start from defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all progress; re-run with --yes to confirm")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a.svc.SetListener(nil)
			a.svc.ResetAll()
			defaults := founder.Defaults().Marshal()
			if a.sync != nil {
				a.sync.Reset(ctx, defaults)
			} else {
				if err := a.cache.Clear(ctx); err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
				if err := a.cache.Write(ctx, defaults); err != nil {
					return fmt.Errorf("write defaults: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s reset to defaults\n", ui.IconWarn)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
