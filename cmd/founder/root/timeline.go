package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"founderos/internal/derive"
	"founderos/internal/ui"
)

func newTimelineCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the 365-day challenge map",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := a.svc.Snapshot()
			now := time.Now()
			maxScore := derive.MaxDailyScore(doc.CustomChecklist)
			days := derive.Timeline(doc.StartDate, doc.Days, maxScore, now)
			if days == nil {
				return fmt.Errorf("start date %q is not a valid date", doc.StartDate)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconFire, "Challenge timeline"))

			perfect := 0
			var row strings.Builder
			for i, d := range days {
				if !full && d.IsFuture && !d.IsToday {
					continue
				}
				switch {
				case d.IsToday:
					row.WriteString(ui.Gold.Render("◉"))
				case d.IsFuture:
					row.WriteString(ui.Muted.Render("·"))
				case d.IsPerfect:
					perfect++
					row.WriteString(ui.Good.Render("█"))
				case d.Score > 0:
					row.WriteString(ui.Warn.Render("▒"))
				default:
					row.WriteString(ui.Muted.Render("░"))
				}
				if (i+1)%30 == 0 {
					row.WriteString("\n")
				}
			}
			fmt.Fprintln(out, row.String())
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Perfect days", fmt.Sprintf("%s %d", ui.IconCheck, perfect)))
			fmt.Fprintln(out, ui.LabelValue("Legend", ui.Good.Render("█ perfect")+" "+ui.Warn.Render("▒ partial")+" "+ui.Muted.Render("░ missed · upcoming")+" "+ui.Gold.Render("◉ today")))
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "include upcoming days")
	return cmd
}
