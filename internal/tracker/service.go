// Package tracker owns the live founder document and exposes the named update
// operations. Every operation mutates under the container lock, re-derives the
// dependent cached fields, and hands the new serialized document to the
// registered listener; readers only ever see a fully applied document.
package tracker

import (
	"log/slog"
	"sync"
	"time"

	"founderos/internal/derive"
	"founderos/internal/founder"
)

// Listener receives the serialized document after every applied mutation.
// The persistence layer registers here; the tracker itself never touches storage.
type Listener interface {
	DocumentChanged(snapshot []byte)
}

// Service is the state container.
type Service struct {
	mu       sync.Mutex
	doc      *founder.Document
	theme    string
	listener Listener
	clock    func() time.Time
	logger   *slog.Logger
}

// New creates a container around doc. A nil doc starts from defaults.
func New(doc *founder.Document, logger *slog.Logger) *Service {
	if doc == nil {
		doc = founder.Defaults()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		doc:    doc,
		theme:  doc.Settings.Theme,
		clock:  time.Now,
		logger: logger,
	}
}

// SetListener registers the change listener. Pass nil to detach.
func (s *Service) SetListener(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = l
}

// SetClock overrides the time source. Tests use this to pin "today".
func (s *Service) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// Snapshot returns a deep copy of the current document.
func (s *Service) Snapshot() *founder.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Export serializes the current document for backup files.
func (s *Service) Export() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Marshal()
}

// MaxDailyScore is the highest score today can reach under the effective checklist.
func (s *Service) MaxDailyScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return derive.MaxDailyScore(s.doc.CustomChecklist)
}

// Theme is the live theme indicator, updated as soon as settings change it.
func (s *Service) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Now reads the container's time source, so callers deriving from a snapshot
// stay on the same day the container mutates.
func (s *Service) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock()
}

// TodayKey is the date key for the container's current day.
func (s *Service) TodayKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return derive.DateKey(s.clock())
}

// mutate runs fn on the document under the lock, then notifies the listener
// with the new serialized document. fn receives "now" so every operation
// stamps times from the same clock.
func (s *Service) mutate(op string, fn func(doc *founder.Document, now time.Time)) {
	s.mu.Lock()
	now := s.clock()
	fn(s.doc, now)
	s.theme = s.doc.Settings.Theme
	snapshot := s.doc.Marshal()
	listener := s.listener
	s.mu.Unlock()

	s.logger.Debug("document updated", "op", op)
	if listener != nil {
		listener.DocumentChanged(snapshot)
	}
}

// recomputeDerived refreshes every cached derivation: today's streak, the
// monotonic best streak, and the achievement flags. Invoked at the end of any
// mutation that can change their inputs.
func recomputeDerived(doc *founder.Document, now time.Time) {
	maxScore := derive.MaxDailyScore(doc.CustomChecklist)
	doc.Streak = derive.Streak(doc.Days, maxScore, now)
	if doc.Streak > doc.BestStreak {
		doc.BestStreak = doc.Streak
	}
	doc.Achievements = derive.CheckAchievements(doc, maxScore, now)
}

// dayRecord returns today's record, creating it when absent.
func dayRecord(doc *founder.Document, key string) *founder.DayRecord {
	rec, ok := doc.Days[key]
	if !ok || rec == nil {
		rec = &founder.DayRecord{
			Checklist:   map[string]bool{},
			CompletedAt: map[string]string{},
		}
		doc.Days[key] = rec
	}
	if rec.Checklist == nil {
		rec.Checklist = map[string]bool{}
	}
	if rec.CompletedAt == nil {
		rec.CompletedAt = map[string]string{}
	}
	return rec
}

// ToggleChecklistTask flips today's entry for taskID, stamps or clears its
// completion time, and re-derives score, streaks, and achievements.
func (s *Service) ToggleChecklistTask(taskID string) {
	s.mutate("toggle_task", func(doc *founder.Document, now time.Time) {
		rec := dayRecord(doc, derive.DateKey(now))
		rec.Checklist[taskID] = !rec.Checklist[taskID]
		if rec.Checklist[taskID] {
			rec.CompletedAt[taskID] = now.Format("15:04")
		} else {
			delete(rec.CompletedAt, taskID)
		}
		rec.Score = derive.Score(rec.Checklist)
		recomputeDerived(doc, now)
	})
}

// SetDayMood sets today's mood.
func (s *Service) SetDayMood(mood string) {
	s.mutate("set_mood", func(doc *founder.Document, now time.Time) {
		dayRecord(doc, derive.DateKey(now)).Mood = mood
	})
}

// SetDayEnergy sets today's energy level (0–5).
func (s *Service) SetDayEnergy(energy int) {
	s.mutate("set_energy", func(doc *founder.Document, now time.Time) {
		if energy < 0 {
			energy = 0
		}
		if energy > 5 {
			energy = 5
		}
		dayRecord(doc, derive.DateKey(now)).Energy = energy
	})
}

// SetDayNotes sets today's free-form notes.
func (s *Service) SetDayNotes(notes string) {
	s.mutate("set_notes", func(doc *founder.Document, now time.Time) {
		dayRecord(doc, derive.DateKey(now)).Notes = notes
	})
}

// SetCustomChecklist replaces the effective checklist definition. Nil or empty
// falls back to the built-in default. Historical day records keep their old
// task ids untouched.
func (s *Service) SetCustomChecklist(items []founder.ChecklistItem) {
	s.mutate("set_checklist", func(doc *founder.Document, now time.Time) {
		doc.CustomChecklist = items
		recomputeDerived(doc, now)
	})
}
