package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"founderos/internal/derive"
	"founderos/internal/founder"
	"founderos/internal/ui"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the quote of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := derive.QuoteOfDay(founder.Quotes, time.Now())
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n   %s\n", ui.IconQuote, q.Text, ui.Muted.Render("- "+q.Author))
			return nil
		},
	}
	return cmd
}
