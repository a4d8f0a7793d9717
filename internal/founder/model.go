// Package founder defines the tracked document: the single root entity holding
// every piece of state for the 365-day challenge. The document is pure data;
// derivations live in internal/derive and mutations in internal/tracker.
package founder

// Document is the root entity. It is persisted wholesale on every change and
// serializes to the same JSON shape the export/import format uses.
type Document struct {
	StartDate       string                  `json:"startDate"`
	Profile         Profile                 `json:"profile"`
	Days            map[string]*DayRecord   `json:"days"`
	CustomChecklist []ChecklistItem         `json:"customChecklist"`
	Projects        map[string]*Project     `json:"projects"`
	Goals           Goals                   `json:"goals"`
	Lifestyle       Lifestyle               `json:"lifestyle"`
	Streak          int                     `json:"streak"`
	BestStreak      int                     `json:"bestStreak"`
	Achievements    map[string]bool         `json:"achievements"`
	Journal         map[string]*JournalEntry `json:"journal"`
	FocusSessions   []FocusSession          `json:"focusSessions"`
	DailyThoughts   map[string]string       `json:"dailyThoughts"`
	Medicine        Medicine                `json:"medicine"`
	MartialArts     MartialArts             `json:"martialArts"`
	Settings        Settings                `json:"settings"`
}

// Profile holds the owner's identity and challenge anchor dates.
type Profile struct {
	Name       string `json:"name"`
	Timezone   string `json:"timezone"`
	TargetDate string `json:"targetDate"`
	Avatar     string `json:"avatar"`
}

// DayRecord is the per-date bundle of checklist completion and wellbeing fields.
// Score is a cache of the truthy entries in Checklist and is recomputed on every
// checklist mutation, never trusted independently.
type DayRecord struct {
	Checklist   map[string]bool   `json:"checklist"`
	CompletedAt map[string]string `json:"completedAt"`
	Score       int               `json:"score"`
	Mood        string            `json:"mood"`
	Energy      int               `json:"energy"`
	Notes       string            `json:"notes"`
}

// ChecklistItem defines one task on the daily checklist. ID is stable across
// renames; Points is always 1 today but kept as a field for forward compatibility.
type ChecklistItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
	Points   int    `json:"points"`
}

// ItemKind selects one of the three item collections on a project.
type ItemKind string

const (
	ItemTask    ItemKind = "task"
	ItemFeature ItemKind = "feature"
	ItemBug     ItemKind = "bug"
)

// Valid reports whether k names a known item collection.
func (k ItemKind) Valid() bool {
	switch k {
	case ItemTask, ItemFeature, ItemBug:
		return true
	default:
		return false
	}
}

// ProjectItem is one entry in a project's tasks/features/bugs lists.
// IDs are creation-time unix milliseconds, matching documents exported by
// earlier versions of the app.
type ProjectItem struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	Priority  string `json:"priority"`
}

// Project tracks one venture: KPIs plus three ordered item collections.
type Project struct {
	Name            string        `json:"name"`
	Icon            string        `json:"icon"`
	Description     string        `json:"description"`
	Users           int           `json:"users,omitempty"`
	Units           int           `json:"units,omitempty"`
	Revenue         int           `json:"revenue"`
	MRR             int           `json:"mrr,omitempty"`
	PrototypeStatus string        `json:"prototypeStatus,omitempty"`
	Tasks           []ProjectItem `json:"tasks"`
	Features        []ProjectItem `json:"features"`
	Bugs            []ProjectItem `json:"bugs"`
	History         []KPISnapshot `json:"history"`
}

// KPISnapshot is a dated capture of a project's headline numbers.
type KPISnapshot struct {
	Date    string `json:"date"`
	Revenue int    `json:"revenue"`
	Users   int    `json:"users"`
}

// Items returns the collection named by kind. The returned slice is the live
// backing slice; callers inside the tracker mutate it under the container lock.
func (p *Project) Items(kind ItemKind) []ProjectItem {
	switch kind {
	case ItemTask:
		return p.Tasks
	case ItemFeature:
		return p.Features
	case ItemBug:
		return p.Bugs
	default:
		return nil
	}
}

// SetItems replaces the collection named by kind.
func (p *Project) SetItems(kind ItemKind, items []ProjectItem) {
	switch kind {
	case ItemTask:
		p.Tasks = items
	case ItemFeature:
		p.Features = items
	case ItemBug:
		p.Bugs = items
	}
}

// Timeframe selects a goal bucket.
type Timeframe string

const (
	TimeframeDaily     Timeframe = "daily"
	TimeframeWeekly    Timeframe = "weekly"
	TimeframeMonthly   Timeframe = "monthly"
	TimeframeQuarterly Timeframe = "quarterly"
	TimeframeYearly    Timeframe = "yearly"
)

// Valid reports whether t names a known goal bucket.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly, TimeframeQuarterly, TimeframeYearly:
		return true
	default:
		return false
	}
}

// Periodic reports whether the timeframe's bucket is keyed by period
// (month/quarter/year) rather than being a flat target map.
func (t Timeframe) Periodic() bool {
	switch t {
	case TimeframeMonthly, TimeframeQuarterly, TimeframeYearly:
		return true
	default:
		return false
	}
}

// PeriodGoal is the target set for one month, quarter, or year. Monthly keys
// take the form "march_2026" (lowercase English month, underscore, year).
type PeriodGoal struct {
	Revenue      int `json:"revenue"`
	Users        int `json:"users"`
	GolubotUnits int `json:"golubotUnits"`
}

// Goals is the full goal ladder.
type Goals struct {
	Daily     map[string]int        `json:"daily"`
	Weekly    map[string]int        `json:"weekly"`
	Monthly   map[string]PeriodGoal `json:"monthly"`
	Quarterly map[string]PeriodGoal `json:"quarterly"`
	Yearly    map[string]PeriodGoal `json:"yearly"`
}

// SleepEntry records one night, times as "HH:MM" strings.
type SleepEntry struct {
	BedTime  string `json:"bedTime"`
	WakeTime string `json:"wakeTime"`
	Quality  int    `json:"quality,omitempty"`
}

// WorkoutEntry records the two daily workout slots.
type WorkoutEntry struct {
	Morning bool `json:"morning"`
	Evening bool `json:"evening"`
}

// MealEntry lists the healthy meals logged for a day.
type MealEntry struct {
	Meals []string `json:"meals"`
}

// Lifestyle holds the four independent date-keyed trackers.
type Lifestyle struct {
	Sleep    map[string]SleepEntry   `json:"sleep"`
	Workouts map[string]WorkoutEntry `json:"workouts"`
	Meals    map[string]MealEntry    `json:"meals"`
	Water    map[string]int          `json:"water"`
}

// JournalEntry is the structured evening reflection for one date.
// Gratitude carries exactly three entries; SaveJournalEntry normalizes it.
type JournalEntry struct {
	Gratitude    []string `json:"gratitude"`
	Wins         string   `json:"wins"`
	Challenges   string   `json:"challenges"`
	Learnings    string   `json:"learnings"`
	TomorrowPlan string   `json:"tomorrowPlan"`
	FreeWrite    string   `json:"freeWrite"`
}

// FocusSession is one completed focus-timer run. The list is append-only.
type FocusSession struct {
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	Task        string `json:"task"`
	CompletedAt string `json:"completedAt"`
}

// MedicineDef is one medicine on the tracked list.
type MedicineDef struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Dosage string `json:"dosage,omitempty"`
	Timing string `json:"timing,omitempty"`
}

// MedicineLog marks one medicine taken on one date.
type MedicineLog struct {
	Taken bool   `json:"taken"`
	Time  string `json:"time"`
}

// Medicine bundles the medicine list with its per-date intake log.
type Medicine struct {
	List []MedicineDef              `json:"list"`
	Log  map[string]map[int64]MedicineLog `json:"log"`
}

// MartialArtsSession records one training session.
type MartialArtsSession struct {
	Duration   int    `json:"duration"`
	Techniques string `json:"techniques"`
	Notes      string `json:"notes"`
}

// MartialArtsGoal is one entry on the training goal list.
type MartialArtsGoal struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// MartialArts bundles discipline info, per-date sessions, and goals.
type MartialArts struct {
	Discipline string                        `json:"discipline,omitempty"`
	Belt       string                        `json:"belt,omitempty"`
	Sessions   map[string]MartialArtsSession `json:"sessions"`
	Goals      []MartialArtsGoal             `json:"goals"`
}

// Settings holds user preferences. Theme is "light" or "dark".
type Settings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	WeekStartsOn  string `json:"weekStartsOn"`
}

// Quote is one entry in the daily-quote rotation.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// AchievementDef describes one unlockable badge.
type AchievementDef struct {
	ID          string
	Label       string
	Icon        string
	Description string
}
