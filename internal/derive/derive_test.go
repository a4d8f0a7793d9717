package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"founderos/internal/founder"
)

func day(score int) *founder.DayRecord {
	return &founder.DayRecord{
		Checklist:   map[string]bool{},
		CompletedAt: map[string]string{},
		Score:       score,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestChecklistItems_FallsBackToDefault(t *testing.T) {
	require.Equal(t, founder.DefaultChecklist, ChecklistItems(nil))

	custom := []founder.ChecklistItem{{ID: "one", Name: "One", Points: 1}}
	require.Equal(t, custom, ChecklistItems(custom))
	require.Equal(t, 1, MaxDailyScore(custom))
	require.Equal(t, len(founder.DefaultChecklist), MaxDailyScore(nil))
}

func TestScore_CountsOnlyCompleted(t *testing.T) {
	require.Equal(t, 0, Score(nil))
	require.Equal(t, 2, Score(map[string]bool{"a": true, "b": false, "c": true}))
}

func TestDayNumber_Bounds(t *testing.T) {
	start := "2026-03-01"

	require.Equal(t, 1, DayNumber(start, date(2026, time.March, 1)))
	require.Equal(t, 2, DayNumber(start, date(2026, time.March, 2)))
	require.Equal(t, 0, DayNumber(start, date(2026, time.February, 27)))
	require.Equal(t, founder.TotalDays, DayNumber(start, date(2027, time.February, 28)))
	require.Equal(t, founder.TotalDays, DayNumber(start, date(2028, time.January, 1)))
	require.Equal(t, 0, DayNumber("garbage", date(2026, time.March, 1)))
}

func TestDaysLeft(t *testing.T) {
	start := "2026-03-01"
	require.Equal(t, founder.TotalDays-1, DaysLeft(start, date(2026, time.March, 1)))
	require.Equal(t, 0, DaysLeft(start, date(2028, time.January, 1)))
}

func TestDayData_MissingDayReadsEmpty(t *testing.T) {
	rec := DayData(map[string]*founder.DayRecord{}, "2026-03-01")
	require.Equal(t, 0, rec.Score)
	require.NotNil(t, rec.Checklist)
	require.NotNil(t, rec.CompletedAt)

	days := map[string]*founder.DayRecord{"2026-03-01": day(3)}
	require.Equal(t, 3, DayData(days, "2026-03-01").Score)
}

func TestStreak_TodayMayBeIncomplete(t *testing.T) {
	today := date(2026, time.March, 10)
	days := map[string]*founder.DayRecord{}
	for i := 1; i <= 7; i++ {
		days[DateKey(today.AddDate(0, 0, -i))] = day(8)
	}

	// Today untouched: the chain of 7 prior perfect days still counts.
	require.Equal(t, 7, Streak(days, 8, today))

	// Today perfect extends it.
	days[DateKey(today)] = day(8)
	require.Equal(t, 8, Streak(days, 8, today))

	// Today partial neither extends nor breaks.
	days[DateKey(today)] = day(5)
	require.Equal(t, 7, Streak(days, 8, today))
}

func TestStreak_OlderGapBreaks(t *testing.T) {
	today := date(2026, time.March, 10)
	days := map[string]*founder.DayRecord{
		DateKey(today.AddDate(0, 0, -1)): day(8),
		DateKey(today.AddDate(0, 0, -2)): day(8),
		// day -3 missing
		DateKey(today.AddDate(0, 0, -4)): day(8),
	}
	require.Equal(t, 2, Streak(days, 8, today))
}

func TestBestStreak_LongestRunInKeyOrder(t *testing.T) {
	days := map[string]*founder.DayRecord{
		"2026-03-01": day(8),
		"2026-03-02": day(8),
		"2026-03-03": day(4),
		"2026-03-04": day(8),
		"2026-03-05": day(8),
		"2026-03-06": day(8),
	}
	require.Equal(t, 3, BestStreak(days, 8))
	require.Equal(t, 0, BestStreak(nil, 8))
}

func TestWeekScore_TrailingSevenDays(t *testing.T) {
	today := date(2026, time.March, 10)
	days := map[string]*founder.DayRecord{
		DateKey(today):                   day(5),
		DateKey(today.AddDate(0, 0, -6)): day(3),
		// Eighth day back falls outside the window.
		DateKey(today.AddDate(0, 0, -7)): day(8),
	}
	require.Equal(t, 8, WeekScore(days, today))
}

func TestLastNDays_AscendingWithWeekdayLabels(t *testing.T) {
	today := date(2026, time.March, 10)
	days := map[string]*founder.DayRecord{
		DateKey(today): {Score: 6, Energy: 4, Mood: "happy"},
	}

	series := LastNDays(days, today, 7)
	require.Len(t, series, 7)
	require.Equal(t, DateKey(today.AddDate(0, 0, -6)), series[0].Key)
	require.Equal(t, DateKey(today), series[6].Key)
	require.Equal(t, today.Format("Mon"), series[6].Label)
	require.Equal(t, 6, series[6].Score)
	require.Equal(t, "happy", series[6].Mood)

	wide := LastNDays(days, today, 30)
	require.Len(t, wide, 30)
	require.Equal(t, today.Format("Jan 2"), wide[29].Label)
}

func TestAverageDailyScore_IgnoresZeroDays(t *testing.T) {
	require.Equal(t, 0.0, AverageDailyScore(nil))

	days := map[string]*founder.DayRecord{
		"2026-03-01": day(8),
		"2026-03-02": day(5),
		"2026-03-03": day(0),
	}
	require.Equal(t, 6.5, AverageDailyScore(days))
}

func TestDayQuality_Buckets(t *testing.T) {
	days := map[string]*founder.DayRecord{
		"2026-03-01": day(8), // perfect
		"2026-03-02": day(6), // 75%
		"2026-03-03": day(4), // 50%
		"2026-03-04": day(3), // below every bucket
	}
	counts := DayQuality(days, 8)
	require.Equal(t, 1, counts.Perfect)
	require.Equal(t, 1, counts.Good)
	require.Equal(t, 1, counts.Weak)

	require.Equal(t, QualityCounts{}, DayQuality(days, 0))
}

func TestCategoryCompletion(t *testing.T) {
	days := map[string]*founder.DayRecord{
		"2026-03-01": {Checklist: map[string]bool{"deepWork": true, "sleep11pm": false}},
		"2026-03-02": {Checklist: map[string]bool{"deepWork": true}},
	}
	out := CategoryCompletion(days)
	require.Equal(t, Completion{Done: 2, Total: 2}, out["deepWork"])
	require.Equal(t, Completion{Done: 0, Total: 1}, out["sleep11pm"])
}

func TestTotalRevenue(t *testing.T) {
	projects := map[string]*founder.Project{
		"a": {Revenue: 1500},
		"b": {Revenue: 500},
		"c": nil,
	}
	require.Equal(t, 2000, TotalRevenue(projects))
}

func TestMonthGoalKey(t *testing.T) {
	require.Equal(t, "march_2026", MonthGoalKey(date(2026, time.March, 15)))
	require.Equal(t, "january_2027", MonthGoalKey(date(2027, time.January, 1)))
}

func TestCurrentMonthGoals_LookupByMonthKey(t *testing.T) {
	goals := founder.Goals{
		Monthly: map[string]founder.PeriodGoal{
			"march_2026": {Revenue: 5000, Users: 50},
			"april_2026": {Revenue: 10000, Users: 100},
		},
	}
	g := CurrentMonthGoals(goals, date(2026, time.April, 20))
	require.Equal(t, 10000, g.Revenue)

	require.Equal(t, founder.PeriodGoal{}, CurrentMonthGoals(goals, date(2026, time.May, 1)))
}

func TestGoalProgress(t *testing.T) {
	require.Equal(t, 0, GoalProgress(500, 0))
	require.Equal(t, 50, GoalProgress(500, 1000))
	require.Equal(t, 100, GoalProgress(2000, 1000))
	require.Equal(t, 33, GoalProgress(1, 3))
}

func TestTimeline_Classification(t *testing.T) {
	start := "2026-03-01"
	today := date(2026, time.March, 3)
	days := map[string]*founder.DayRecord{
		"2026-03-01": day(8),
		"2026-03-02": day(5),
	}

	timeline := Timeline(start, days, 8, today)
	require.Len(t, timeline, founder.TotalDays)

	require.True(t, timeline[0].IsPast)
	require.True(t, timeline[0].IsPerfect)
	require.Equal(t, 8, timeline[0].Score)

	require.True(t, timeline[1].IsPast)
	require.False(t, timeline[1].IsPerfect)

	require.True(t, timeline[2].IsToday)
	require.False(t, timeline[2].IsPast)
	require.False(t, timeline[2].IsFuture)

	require.True(t, timeline[3].IsFuture)
	require.Equal(t, "2026-03-04", timeline[3].Key)
	require.Equal(t, 4, timeline[3].DayNumber)

	require.Nil(t, Timeline("garbage", days, 8, today))
}

func TestQuoteOfDay_StableWithinADay(t *testing.T) {
	morning := time.Date(2026, time.March, 5, 6, 0, 0, 0, time.UTC)
	night := time.Date(2026, time.March, 5, 23, 59, 0, 0, time.UTC)
	require.Equal(t, QuoteOfDay(founder.Quotes, morning), QuoteOfDay(founder.Quotes, night))

	seed := 2026*10000 + 3*100 + 5
	require.Equal(t, founder.Quotes[seed%len(founder.Quotes)], QuoteOfDay(founder.Quotes, morning))

	require.Equal(t, founder.Quote{}, QuoteOfDay(nil, morning))
}

func TestWorkoutSessionCount(t *testing.T) {
	workouts := map[string]founder.WorkoutEntry{
		"2026-03-01": {Morning: true, Evening: true},
		"2026-03-02": {Morning: true},
		"2026-03-03": {},
	}
	require.Equal(t, 3, WorkoutSessionCount(workouts))
}

func TestWeeklyLifestyleStats(t *testing.T) {
	today := date(2026, time.March, 10)
	yesterday := DateKey(today.AddDate(0, 0, -1))

	lifestyle := founder.Lifestyle{
		Sleep: map[string]founder.SleepEntry{
			// Wraps past midnight: 23:00 to 07:00 is 8 hours.
			DateKey(today): {BedTime: "23:00", WakeTime: "07:00"},
			yesterday:      {BedTime: "01:00", WakeTime: "07:00"},
		},
		Workouts: map[string]founder.WorkoutEntry{
			DateKey(today): {Morning: true, Evening: true},
		},
		Water: map[string]int{
			DateKey(today): 6,
			yesterday:      4,
			// Outside the window.
			DateKey(today.AddDate(0, 0, -8)): 10,
		},
		Meals: map[string]founder.MealEntry{
			DateKey(today): {Meals: []string{"breakfast", "lunch"}},
		},
	}

	stats := WeeklyLifestyleStats(lifestyle, today)
	require.Equal(t, 7.0, stats.AvgSleep)
	require.Equal(t, 2, stats.TotalWorkouts)
	require.Equal(t, 10, stats.TotalWater)
	require.Equal(t, 2, stats.HealthyMeals)
}

func TestClockHour(t *testing.T) {
	require.Equal(t, 23, clockHour("23:00"))
	require.Equal(t, 7, clockHour("07:30"))
	require.Equal(t, 0, clockHour(""))
	require.Equal(t, 0, clockHour("junk"))
	require.Equal(t, 0, clockHour("99:00"))
}
