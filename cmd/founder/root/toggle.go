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

func newToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Toggle a checklist task for today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID := strings.TrimSpace(args[0])
			if taskID == "" {
				return fmt.Errorf("task id is required")
			}

			ctx := context.Background()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			doc := a.svc.Snapshot()
			known := false
			name := taskID
			for _, item := range derive.ChecklistItems(doc.CustomChecklist) {
				if item.ID == taskID {
					known = true
					name = item.Name
					break
				}
			}
			if !known {
				return fmt.Errorf("unknown task %q (see 'founder status' for ids)", taskID)
			}

			a.svc.ToggleChecklistTask(taskID)
			a.flush(ctx)

			doc = a.svc.Snapshot()
			today := derive.DayData(doc.Days, derive.DateKey(time.Now()))
			maxScore := derive.MaxDailyScore(doc.CustomChecklist)
			out := cmd.OutOrStdout()
			if today.Checklist[taskID] {
				fmt.Fprintf(out, "%s %s\n", ui.IconCheck, ui.Good.Render(name+" done"))
			} else {
				fmt.Fprintf(out, "%s %s\n", ui.IconCircle, name+" unchecked")
			}
			fmt.Fprintln(out, ui.LabelValue("Today", fmt.Sprintf("%d/%d", today.Score, maxScore)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d", ui.IconFire, doc.Streak)))
			return nil
		},
	}
	return cmd
}
