package tracker

// Patch types carry partial updates: only non-nil fields are applied.
// This mirrors the shallow-merge semantics of the document's update operations.

// ProjectPatch is a partial update of a project's scalar fields.
type ProjectPatch struct {
	Name            *string
	Icon            *string
	Description     *string
	Users           *int
	Units           *int
	Revenue         *int
	MRR             *int
	PrototypeStatus *string
}

// GoalPatch updates one goal bucket. Targets applies to the flat daily/weekly
// buckets; the pointer fields apply to a monthly/quarterly/yearly period.
type GoalPatch struct {
	Targets      map[string]int
	Revenue      *int
	Users        *int
	GolubotUnits *int
}

// SleepPatch is a partial update of one night's sleep entry.
type SleepPatch struct {
	BedTime  *string
	WakeTime *string
	Quality  *int
}

// WorkoutPatch is a partial update of one day's workout slots.
type WorkoutPatch struct {
	Morning *bool
	Evening *bool
}

// SettingsPatch is a partial update of user settings.
type SettingsPatch struct {
	Theme         *string
	Notifications *bool
	WeekStartsOn  *string
}

// ProfilePatch is a partial update of the profile.
type ProfilePatch struct {
	Name       *string
	Timezone   *string
	TargetDate *string
	Avatar     *string
	StartDate  *string
}

// MartialArtsPatch is a partial update of the martial-arts bucket's scalar fields.
type MartialArtsPatch struct {
	Discipline *string
	Belt       *string
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func applyInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
