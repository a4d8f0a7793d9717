package derive

import (
	"time"

	"founderos/internal/founder"
)

// achievementChecks is the fixed predicate table: each entry names the badge
// it unlocks and the condition over the current document snapshot.
var achievementChecks = []struct {
	id    string
	check func(s achievementState) bool
}{
	{"sevenDayStreak", func(s achievementState) bool { return s.streak >= 7 }},
	{"twentyOneDayStreak", func(s achievementState) bool { return s.streak >= 21 }},
	{"perfectWeek", func(s achievementState) bool { return s.maxScore > 0 && s.weekScore == s.maxScore*7 }},
	{"first1K", func(s achievementState) bool { return s.totalRevenue >= 1000 }},
	{"first10K", func(s achievementState) bool { return s.totalRevenue >= 10000 }},
	{"first50K", func(s achievementState) bool { return s.totalRevenue >= 50000 }},
	{"hundredUsers", func(s achievementState) bool { return s.verboficaUsers >= 100 }},
	{"hundredDays", func(s achievementState) bool { return s.dayNumber >= 100 }},
	{"twoHundredDays", func(s achievementState) bool { return s.dayNumber >= 200 }},
	{"yearComplete", func(s achievementState) bool { return s.dayNumber >= 365 }},
	{"thirtyWorkouts", func(s achievementState) bool { return s.workoutSessions >= 30 }},
}

type achievementState struct {
	streak          int
	weekScore       int
	maxScore        int
	totalRevenue    int
	verboficaUsers  int
	dayNumber       int
	workoutSessions int
}

// CheckAchievements evaluates the unlock table against doc and returns the
// achievement map with any newly satisfied badges set. Flags already true are
// carried over untouched; no predicate can revoke an earlier unlock.
func CheckAchievements(doc *founder.Document, maxScore int, today time.Time) map[string]bool {
	flags := make(map[string]bool, len(doc.Achievements))
	for id, earned := range doc.Achievements {
		flags[id] = earned
	}

	state := achievementState{
		streak:          Streak(doc.Days, maxScore, today),
		weekScore:       WeekScore(doc.Days, today),
		maxScore:        maxScore,
		totalRevenue:    TotalRevenue(doc.Projects),
		dayNumber:       DayNumber(doc.StartDate, today),
		workoutSessions: WorkoutSessionCount(doc.Lifestyle.Workouts),
	}
	if p := doc.Projects["verboficaAI"]; p != nil {
		state.verboficaUsers = p.Users
	}

	for _, entry := range achievementChecks {
		if entry.check(state) {
			flags[entry.id] = true
		}
	}
	return flags
}
