package tracker

import (
	"time"

	"founderos/internal/founder"
)

// SetWater replaces the water count for a date.
func (s *Service) SetWater(dateKey string, glasses int) {
	s.mutate("set_water", func(doc *founder.Document, _ time.Time) {
		if glasses < 0 {
			glasses = 0
		}
		doc.Lifestyle.Water[dateKey] = glasses
	})
}

// UpdateSleep shallow-merges patch into the date's sleep entry.
func (s *Service) UpdateSleep(dateKey string, patch SleepPatch) {
	s.mutate("update_sleep", func(doc *founder.Document, _ time.Time) {
		entry := doc.Lifestyle.Sleep[dateKey]
		applyString(&entry.BedTime, patch.BedTime)
		applyString(&entry.WakeTime, patch.WakeTime)
		applyInt(&entry.Quality, patch.Quality)
		doc.Lifestyle.Sleep[dateKey] = entry
	})
}

// UpdateWorkout shallow-merges patch into the date's workout entry. Workout
// changes feed the thirty-workouts achievement, so derived fields refresh.
func (s *Service) UpdateWorkout(dateKey string, patch WorkoutPatch) {
	s.mutate("update_workout", func(doc *founder.Document, now time.Time) {
		entry := doc.Lifestyle.Workouts[dateKey]
		applyBool(&entry.Morning, patch.Morning)
		applyBool(&entry.Evening, patch.Evening)
		doc.Lifestyle.Workouts[dateKey] = entry
		recomputeDerived(doc, now)
	})
}

// SetMeals replaces the healthy-meals list for a date.
func (s *Service) SetMeals(dateKey string, meals []string) {
	s.mutate("set_meals", func(doc *founder.Document, _ time.Time) {
		doc.Lifestyle.Meals[dateKey] = founder.MealEntry{Meals: meals}
	})
}
