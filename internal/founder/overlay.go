package founder

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Overlay decodes raw JSON on top of a fresh default document. Fields absent
// from raw keep their default values; map-valued fields merge key-by-key, so a
// partial goal ladder never wipes the seeded one. This is the single merge rule
// used by cache load, remote load, and import.
func Overlay(raw []byte) (*Document, error) {
	doc := Defaults()
	if len(bytes.TrimSpace(raw)) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.normalize()
	return doc, nil
}

// OverlayLegacy applies the v2→v3 schema migration on top of Overlay: the v2
// schema predates bestStreak, so the cached value restarts at zero and is
// rebuilt from the days map on the next mutation.
func OverlayLegacy(raw []byte) (*Document, error) {
	doc, err := Overlay(raw)
	if err != nil {
		return nil, err
	}
	doc.BestStreak = 0
	return doc, nil
}

// normalize restores the inner maps a hand-edited or truncated document may
// have nulled out. Read paths must never trip over a nil map.
func (d *Document) normalize() {
	if d.Days == nil {
		d.Days = map[string]*DayRecord{}
	}
	if d.Projects == nil {
		d.Projects = map[string]*Project{}
	}
	if d.Achievements == nil {
		d.Achievements = defaultAchievementFlags()
	}
	if d.Journal == nil {
		d.Journal = map[string]*JournalEntry{}
	}
	if d.DailyThoughts == nil {
		d.DailyThoughts = map[string]string{}
	}
	if d.Lifestyle.Sleep == nil {
		d.Lifestyle.Sleep = map[string]SleepEntry{}
	}
	if d.Lifestyle.Workouts == nil {
		d.Lifestyle.Workouts = map[string]WorkoutEntry{}
	}
	if d.Lifestyle.Meals == nil {
		d.Lifestyle.Meals = map[string]MealEntry{}
	}
	if d.Lifestyle.Water == nil {
		d.Lifestyle.Water = map[string]int{}
	}
	if d.Medicine.Log == nil {
		d.Medicine.Log = map[string]map[int64]MedicineLog{}
	}
	if d.MartialArts.Sessions == nil {
		d.MartialArts.Sessions = map[string]MartialArtsSession{}
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	raw, err := json.Marshal(d)
	if err != nil {
		// The document is plain data with no unmarshalable types.
		panic(fmt.Sprintf("founder: marshal document: %v", err))
	}
	clone := &Document{}
	if err := json.Unmarshal(raw, clone); err != nil {
		panic(fmt.Sprintf("founder: unmarshal document: %v", err))
	}
	clone.normalize()
	return clone
}

// Marshal serializes the document for persistence and export.
func (d *Document) Marshal() []byte {
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		panic(fmt.Sprintf("founder: marshal document: %v", err))
	}
	return raw
}

// IsEmptyPayload reports whether raw carries no document: empty input, JSON
// null, an empty string literal, or an empty object (the remote store seeds
// its row with '{}').
func IsEmptyPayload(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return true
	}
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return false
	}
	return len(probe) == 0
}
