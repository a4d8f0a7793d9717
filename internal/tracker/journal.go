package tracker

import (
	"time"

	"founderos/internal/founder"
)

// SaveJournalEntry writes the full entry for a date, replacing any prior one.
// Gratitude is normalized to exactly three entries.
func (s *Service) SaveJournalEntry(dateKey string, entry founder.JournalEntry) {
	s.mutate("save_journal", func(doc *founder.Document, _ time.Time) {
		gratitude := make([]string, 3)
		copy(gratitude, entry.Gratitude)
		entry.Gratitude = gratitude
		doc.Journal[dateKey] = &entry
	})
}

// SaveDailyThought writes the single free-text thought for a date.
func (s *Service) SaveDailyThought(dateKey, thought string) {
	s.mutate("save_thought", func(doc *founder.Document, _ time.Time) {
		doc.DailyThoughts[dateKey] = thought
	})
}

// AddFocusSession appends a completed focus-timer session. The session's date
// and completion stamp default to now when unset.
func (s *Service) AddFocusSession(session founder.FocusSession) {
	s.mutate("add_focus_session", func(doc *founder.Document, now time.Time) {
		if session.Date == "" {
			session.Date = now.Format("2006-01-02")
		}
		if session.CompletedAt == "" {
			session.CompletedAt = now.Format(time.RFC3339)
		}
		doc.FocusSessions = append(doc.FocusSessions, session)
	})
}

// UpdateSettings shallow-merges patch into settings. A theme change also
// updates the live theme indicator immediately.
func (s *Service) UpdateSettings(patch SettingsPatch) {
	s.mutate("update_settings", func(doc *founder.Document, _ time.Time) {
		applyString(&doc.Settings.Theme, patch.Theme)
		applyBool(&doc.Settings.Notifications, patch.Notifications)
		applyString(&doc.Settings.WeekStartsOn, patch.WeekStartsOn)
	})
}

// UpdateProfile shallow-merges patch into the profile. StartDate moves the
// challenge anchor, which shifts the day number and timeline.
func (s *Service) UpdateProfile(patch ProfilePatch) {
	s.mutate("update_profile", func(doc *founder.Document, now time.Time) {
		applyString(&doc.Profile.Name, patch.Name)
		applyString(&doc.Profile.Timezone, patch.Timezone)
		applyString(&doc.Profile.TargetDate, patch.TargetDate)
		applyString(&doc.Profile.Avatar, patch.Avatar)
		if patch.StartDate != nil {
			doc.StartDate = *patch.StartDate
			recomputeDerived(doc, now)
		}
	})
}
