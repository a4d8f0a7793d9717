package tracker

import (
	"time"

	"founderos/internal/founder"
)

// UpdateGoals merges patch into one goal bucket. For the flat daily/weekly
// buckets the period must be empty and patch.Targets is merged key-by-key.
// For monthly/quarterly/yearly a period key is required and only the fields
// set in the patch change; the period's other targets keep their values.
func (s *Service) UpdateGoals(tf founder.Timeframe, period string, patch GoalPatch) error {
	if !tf.Valid() {
		return ErrInvalidTimeframe
	}
	if tf.Periodic() && period == "" {
		return ErrPeriodRequired
	}

	s.mutate("update_goals", func(doc *founder.Document, _ time.Time) {
		switch tf {
		case founder.TimeframeDaily:
			mergeTargets(&doc.Goals.Daily, patch.Targets)
		case founder.TimeframeWeekly:
			mergeTargets(&doc.Goals.Weekly, patch.Targets)
		case founder.TimeframeMonthly:
			mergePeriod(&doc.Goals.Monthly, period, patch)
		case founder.TimeframeQuarterly:
			mergePeriod(&doc.Goals.Quarterly, period, patch)
		case founder.TimeframeYearly:
			mergePeriod(&doc.Goals.Yearly, period, patch)
		}
	})
	return nil
}

func mergeTargets(bucket *map[string]int, targets map[string]int) {
	if *bucket == nil {
		*bucket = map[string]int{}
	}
	for k, v := range targets {
		(*bucket)[k] = v
	}
}

func mergePeriod(bucket *map[string]founder.PeriodGoal, period string, patch GoalPatch) {
	if *bucket == nil {
		*bucket = map[string]founder.PeriodGoal{}
	}
	goal := (*bucket)[period]
	applyInt(&goal.Revenue, patch.Revenue)
	applyInt(&goal.Users, patch.Users)
	applyInt(&goal.GolubotUnits, patch.GolubotUnits)
	(*bucket)[period] = goal
}
