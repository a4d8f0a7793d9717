package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"founderos/internal/derive"
	"founderos/internal/founder"
	"founderos/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the challenge dashboard",
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
			today := derive.DayData(doc.Days, derive.DateKey(now))
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconRocket, fmt.Sprintf("Founder OS — Day %d of %d", derive.DayNumber(doc.StartDate, now), founder.TotalDays)))
			fmt.Fprintln(out, ui.LabelValue("Days left", derive.DaysLeft(doc.StartDate, now)))
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d/%d", today.Score, maxScore)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d (best %d)", ui.IconFire, doc.Streak, doc.BestStreak)))
			fmt.Fprintln(out, ui.LabelValue("Week score", derive.WeekScore(doc.Days, now)))
			fmt.Fprintln(out, ui.LabelValue("Revenue", fmt.Sprintf("%s ₹%d", ui.IconMoney, derive.TotalRevenue(doc.Projects))))
			fmt.Fprintln(out, ui.LabelValue("Sync", ui.SyncBadge(a.syncStatus())))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Checklist"))
			for _, item := range derive.ChecklistItems(doc.CustomChecklist) {
				icon := ui.IconCircle
				if today.Checklist[item.ID] {
					icon = ui.IconCheck
				}
				fmt.Fprintf(out, "%s %s %s\n", icon, item.Name, ui.Muted.Render("("+item.ID+")"))
			}
			fmt.Fprintln(out, "")

			earned := 0
			for _, def := range founder.Achievements {
				if doc.Achievements[def.ID] {
					earned++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintf(out, "%d of %d unlocked\n", earned, len(founder.Achievements))
			for _, def := range founder.Achievements {
				if doc.Achievements[def.ID] {
					fmt.Fprintf(out, "%s %s %s\n", def.Icon, ui.Gold.Render(def.Label), ui.Muted.Render(def.Description))
				}
			}
			fmt.Fprintln(out, "")

			quote := derive.QuoteOfDay(founder.Quotes, now)
			fmt.Fprintf(out, "%s %s %s\n", ui.IconQuote, quote.Text, ui.Muted.Render("- "+quote.Author))

			return nil
		},
	}
	return cmd
}
