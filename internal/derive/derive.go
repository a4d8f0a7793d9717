// Package derive holds the pure derivation functions over the founder
// document: scores, streaks, achievements, aggregates, timeline classification
// and the daily quote. Every function is deterministic given its arguments;
// "today" is always passed in rather than read from the clock so callers and
// tests control time.
package derive

import (
	"math"
	"sort"
	"strings"
	"time"

	"founderos/internal/founder"
)

// DateKeyLayout is the canonical YYYY-MM-DD form used for all date keys.
const DateKeyLayout = "2006-01-02"

// DateKey formats t as a date key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ChecklistItems returns the effective checklist: the custom list when present
// and non-empty, otherwise the built-in default.
func ChecklistItems(custom []founder.ChecklistItem) []founder.ChecklistItem {
	if len(custom) > 0 {
		return custom
	}
	return founder.DefaultChecklist
}

// MaxDailyScore is the highest score a day can reach with the effective checklist.
func MaxDailyScore(custom []founder.ChecklistItem) int {
	return len(ChecklistItems(custom))
}

// Score counts the completed entries in a checklist map.
func Score(checklist map[string]bool) int {
	n := 0
	for _, done := range checklist {
		if done {
			n++
		}
	}
	return n
}

// DayNumber returns the 1-based challenge day for today, clamped to
// [0, TotalDays]. The day the challenge starts is day 1.
func DayNumber(startDate string, today time.Time) int {
	start, err := time.ParseInLocation(DateKeyLayout, startDate, today.Location())
	if err != nil {
		return 0
	}
	n := daysBetween(start, today) + 1
	if n < 0 {
		return 0
	}
	if n > founder.TotalDays {
		return founder.TotalDays
	}
	return n
}

// DaysLeft is the number of challenge days after today.
func DaysLeft(startDate string, today time.Time) int {
	return founder.TotalDays - DayNumber(startDate, today)
}

func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}

// DayData returns the record for key, or an empty record when the day has
// never been touched. The zero record reads as score 0, no mood, zero energy.
func DayData(days map[string]*founder.DayRecord, key string) founder.DayRecord {
	if rec, ok := days[key]; ok && rec != nil {
		return *rec
	}
	return founder.DayRecord{
		Checklist:   map[string]bool{},
		CompletedAt: map[string]string{},
	}
}

// Streak counts consecutive perfect days ending at today. Today itself may be
// absent or incomplete without breaking the chain; any older gap stops the count.
func Streak(days map[string]*founder.DayRecord, maxScore int, today time.Time) int {
	streak := 0
	for i := 0; i < founder.TotalDays; i++ {
		key := DateKey(today.AddDate(0, 0, -i))
		rec := days[key]
		switch {
		case rec != nil && rec.Score == maxScore:
			streak++
		case i == 0:
			continue
		default:
			return streak
		}
	}
	return streak
}

// BestStreak returns the longest run of perfect days over the recorded
// history. Adjacency is by sorted key order, not calendar distance: a day with
// no record at all does not break a run. That matches how historical best
// streaks were computed by every prior version of the app, so changing it
// would silently shrink stored bests.
func BestStreak(days map[string]*founder.DayRecord, maxScore int) int {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best, current := 0, 0
	for _, k := range keys {
		if rec := days[k]; rec != nil && rec.Score == maxScore {
			current++
			if current > best {
				best = current
			}
		} else {
			current = 0
		}
	}
	return best
}

// WeekScore sums the scores of the trailing 7 days, today included.
func WeekScore(days map[string]*founder.DayRecord, today time.Time) int {
	total := 0
	for i := 0; i < 7; i++ {
		if rec := days[DateKey(today.AddDate(0, 0, -i))]; rec != nil {
			total += rec.Score
		}
	}
	return total
}

// SeriesPoint is one element of a trailing-window series.
type SeriesPoint struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Score  int    `json:"score"`
	Energy int    `json:"energy"`
	Mood   string `json:"mood,omitempty"`
}

// LastNDays builds an ascending series over the trailing n days ending today.
// The 7-day window labels by weekday, longer windows by month and day.
func LastNDays(days map[string]*founder.DayRecord, today time.Time, n int) []SeriesPoint {
	series := make([]SeriesPoint, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := DateKey(date)
		label := date.Format("Jan 2")
		if n <= 7 {
			label = date.Format("Mon")
		}
		point := SeriesPoint{Key: key, Label: label}
		if rec := days[key]; rec != nil {
			point.Score = rec.Score
			point.Energy = rec.Energy
			point.Mood = rec.Mood
		}
		series = append(series, point)
	}
	return series
}

// AverageDailyScore averages the score over days with a nonzero score,
// rounded to one decimal place. Zero when no day qualifies.
func AverageDailyScore(days map[string]*founder.DayRecord) float64 {
	total, count := 0, 0
	for _, rec := range days {
		if rec != nil && rec.Score > 0 {
			total += rec.Score
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(count)*10) / 10
}

// PerfectDays counts recorded days at the maximum score.
func PerfectDays(days map[string]*founder.DayRecord, maxScore int) int {
	n := 0
	for _, rec := range days {
		if rec != nil && rec.Score == maxScore {
			n++
		}
	}
	return n
}

// QualityCounts buckets recorded days by score threshold.
type QualityCounts struct {
	Perfect int // score == 100% of max
	Good    int // score >= 75% of max, below perfect
	Weak    int // score >= 50% of max, below good
}

// DayQuality classifies every recorded day against maxScore. All buckets are
// zero when maxScore is zero.
func DayQuality(days map[string]*founder.DayRecord, maxScore int) QualityCounts {
	var counts QualityCounts
	if maxScore == 0 {
		return counts
	}
	for _, rec := range days {
		if rec == nil {
			continue
		}
		ratio := float64(rec.Score) / float64(maxScore)
		switch {
		case ratio >= 1:
			counts.Perfect++
		case ratio >= 0.75:
			counts.Good++
		case ratio >= 0.5:
			counts.Weak++
		}
	}
	return counts
}

// Completion is a done/total tally for one checklist task.
type Completion struct {
	Done  int `json:"done"`
	Total int `json:"total"`
}

// CategoryCompletion tallies per-task completion ratios across every recorded
// day, keyed by task id. Days written under retired task ids still count.
func CategoryCompletion(days map[string]*founder.DayRecord) map[string]Completion {
	out := map[string]Completion{}
	for _, rec := range days {
		if rec == nil {
			continue
		}
		for taskID, done := range rec.Checklist {
			c := out[taskID]
			c.Total++
			if done {
				c.Done++
			}
			out[taskID] = c
		}
	}
	return out
}

// TotalRevenue sums the revenue field across all projects.
func TotalRevenue(projects map[string]*founder.Project) int {
	total := 0
	for _, p := range projects {
		if p != nil {
			total += p.Revenue
		}
	}
	return total
}

// MonthGoalKey returns the goal-table key for t's month: lowercase English
// month name, underscore, four-digit year (e.g. "march_2026").
func MonthGoalKey(t time.Time) string {
	return strings.ToLower(t.Month().String()) + "_" + t.Format("2006")
}

// CurrentMonthGoals looks up this month's targets by its month_year key.
// The zero goal is returned when the month has no entry.
func CurrentMonthGoals(goals founder.Goals, today time.Time) founder.PeriodGoal {
	return goals.Monthly[MonthGoalKey(today)]
}

// GoalProgress is the percentage of target reached, clamped to 100.
// Zero when the target is unset, so callers never divide by zero.
func GoalProgress(current, target int) int {
	if target == 0 {
		return 0
	}
	pct := int(math.Round(float64(current) / float64(target) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// TimelineDay is one cell of the 365-day map.
type TimelineDay struct {
	Key       string `json:"key"`
	DayNumber int    `json:"dayNumber"`
	Score     int    `json:"score"`
	IsPast    bool   `json:"isPast"`
	IsToday   bool   `json:"isToday"`
	IsFuture  bool   `json:"isFuture"`
	IsPerfect bool   `json:"isPerfect"`
}

// Timeline classifies every day of the challenge relative to today and
// attaches each recorded score.
func Timeline(startDate string, days map[string]*founder.DayRecord, maxScore int, today time.Time) []TimelineDay {
	start, err := time.ParseInLocation(DateKeyLayout, startDate, today.Location())
	if err != nil {
		return nil
	}
	dayNum := DayNumber(startDate, today)

	timeline := make([]TimelineDay, founder.TotalDays)
	for i := 0; i < founder.TotalDays; i++ {
		key := DateKey(start.AddDate(0, 0, i))
		score := 0
		if rec := days[key]; rec != nil {
			score = rec.Score
		}
		timeline[i] = TimelineDay{
			Key:       key,
			DayNumber: i + 1,
			Score:     score,
			IsPast:    i < dayNum-1,
			IsToday:   i == dayNum-1,
			IsFuture:  i >= dayNum,
			IsPerfect: maxScore > 0 && score == maxScore,
		}
	}
	return timeline
}

// QuoteOfDay picks the day's quote from the rotation. The index is seeded by
// the calendar date alone, so repeated calls within a day are stable and the
// selection rolls over exactly at local midnight.
func QuoteOfDay(quotes []founder.Quote, today time.Time) founder.Quote {
	if len(quotes) == 0 {
		return founder.Quote{}
	}
	seed := today.Year()*10000 + int(today.Month())*100 + today.Day()
	return quotes[seed%len(quotes)]
}

// WorkoutSessionCount totals morning and evening workout sessions over the
// whole workout log.
func WorkoutSessionCount(workouts map[string]founder.WorkoutEntry) int {
	n := 0
	for _, w := range workouts {
		if w.Morning {
			n++
		}
		if w.Evening {
			n++
		}
	}
	return n
}

// LifestyleStats summarizes the trailing week of lifestyle tracking.
type LifestyleStats struct {
	AvgSleep      float64 `json:"avgSleep"`
	TotalWorkouts int     `json:"totalWorkouts"`
	TotalWater    int     `json:"totalWater"`
	HealthyMeals  int     `json:"healthyMeals"`
}

// WeeklyLifestyleStats aggregates sleep, workouts, water, and meals over the
// trailing 7 days ending today. Sleep hours are derived from bed/wake hour
// fields and wrap across midnight.
func WeeklyLifestyleStats(lifestyle founder.Lifestyle, today time.Time) LifestyleStats {
	var stats LifestyleStats
	sleepDays := 0
	sleepHours := 0

	for i := 0; i < 7; i++ {
		key := DateKey(today.AddDate(0, 0, -i))

		if sleep, ok := lifestyle.Sleep[key]; ok && sleep.BedTime != "" && sleep.WakeTime != "" {
			bed := clockHour(sleep.BedTime)
			wake := clockHour(sleep.WakeTime)
			sleepDays++
			if wake > bed {
				sleepHours += wake - bed
			} else {
				sleepHours += (24 - bed) + wake
			}
		}

		if workout, ok := lifestyle.Workouts[key]; ok {
			if workout.Morning {
				stats.TotalWorkouts++
			}
			if workout.Evening {
				stats.TotalWorkouts++
			}
		}

		stats.TotalWater += lifestyle.Water[key]

		if meal, ok := lifestyle.Meals[key]; ok {
			stats.HealthyMeals += len(meal.Meals)
		}
	}

	if sleepDays > 0 {
		stats.AvgSleep = math.Round(float64(sleepHours)/float64(sleepDays)*10) / 10
	}
	return stats
}

func clockHour(hhmm string) int {
	h, _, ok := strings.Cut(hhmm, ":")
	if !ok {
		h = hhmm
	}
	hour := 0
	for _, r := range h {
		if r < '0' || r > '9' {
			return 0
		}
		hour = hour*10 + int(r-'0')
	}
	if hour > 23 {
		return 0
	}
	return hour
}
