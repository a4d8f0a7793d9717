package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"founderos/internal/founder"
)

func TestCheckAchievements_UnlocksFromState(t *testing.T) {
	today := date(2026, time.June, 20)
	doc := founder.Defaults()
	doc.StartDate = "2026-03-01"

	for i := 1; i <= 7; i++ {
		doc.Days[DateKey(today.AddDate(0, 0, -i))] = day(8)
	}
	doc.Projects["verboficaAI"].Revenue = 1200
	doc.Projects["verboficaAI"].Users = 150

	flags := CheckAchievements(doc, 8, today)
	require.True(t, flags["sevenDayStreak"])
	require.True(t, flags["first1K"])
	require.True(t, flags["hundredUsers"])
	require.True(t, flags["hundredDays"])
	require.False(t, flags["twentyOneDayStreak"])
	require.False(t, flags["first10K"])
	require.False(t, flags["yearComplete"])
}

func TestCheckAchievements_NeverRevokes(t *testing.T) {
	today := date(2026, time.March, 5)
	doc := founder.Defaults()
	doc.Achievements["sevenDayStreak"] = true
	doc.Achievements["first50K"] = true

	// Nothing in the document satisfies either predicate anymore.
	flags := CheckAchievements(doc, 8, today)
	require.True(t, flags["sevenDayStreak"])
	require.True(t, flags["first50K"])
}

func TestCheckAchievements_PerfectWeek(t *testing.T) {
	today := date(2026, time.March, 10)
	doc := founder.Defaults()
	for i := 0; i < 7; i++ {
		doc.Days[DateKey(today.AddDate(0, 0, -i))] = day(8)
	}

	flags := CheckAchievements(doc, 8, today)
	require.True(t, flags["perfectWeek"])

	// A zero max score can never produce a perfect week.
	flags = CheckAchievements(doc, 0, today)
	require.False(t, flags["perfectWeek"])
}

func TestCheckAchievements_ThirtyWorkouts(t *testing.T) {
	today := date(2026, time.March, 10)
	doc := founder.Defaults()
	for i := 0; i < 15; i++ {
		doc.Lifestyle.Workouts[DateKey(today.AddDate(0, 0, -i))] = founder.WorkoutEntry{Morning: true, Evening: true}
	}

	flags := CheckAchievements(doc, 8, today)
	require.True(t, flags["thirtyWorkouts"])
}
