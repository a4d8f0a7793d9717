package root

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"founderos/internal/tracker"
	"founderos/internal/ui"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the document from a JSON backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.svc.ImportAll(raw); err != nil {
				if errors.Is(err, tracker.ErrInvalidImport) {
					return fmt.Errorf("%s is not a valid backup: %w", args[0], err)
				}
				return err
			}
			a.flush(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "%s imported %s\n", ui.IconCheck, args[0])
			return nil
		},
	}
	return cmd
}
