package tracker

import (
	"time"

	"founderos/internal/founder"
)

// UpdateMartialArts shallow-merges patch into the martial-arts bucket.
func (s *Service) UpdateMartialArts(patch MartialArtsPatch) {
	s.mutate("update_martial_arts", func(doc *founder.Document, _ time.Time) {
		applyString(&doc.MartialArts.Discipline, patch.Discipline)
		applyString(&doc.MartialArts.Belt, patch.Belt)
	})
}

// SaveMartialArtsSession writes the training session for a date, replacing
// any prior entry.
func (s *Service) SaveMartialArtsSession(dateKey string, session founder.MartialArtsSession) {
	s.mutate("save_martial_arts_session", func(doc *founder.Document, _ time.Time) {
		doc.MartialArts.Sessions[dateKey] = session
	})
}

// AddMartialArtsGoal appends a training goal with a creation-time id.
func (s *Service) AddMartialArtsGoal(text string) founder.MartialArtsGoal {
	var goal founder.MartialArtsGoal
	s.mutate("add_martial_arts_goal", func(doc *founder.Document, now time.Time) {
		goal = founder.MartialArtsGoal{ID: now.UnixMilli(), Text: text}
		doc.MartialArts.Goals = append(doc.MartialArts.Goals, goal)
	})
	return goal
}

// ToggleMartialArtsGoal flips a goal's completed flag; missing id is a no-op.
func (s *Service) ToggleMartialArtsGoal(goalID int64) {
	s.mutate("toggle_martial_arts_goal", func(doc *founder.Document, _ time.Time) {
		for i := range doc.MartialArts.Goals {
			if doc.MartialArts.Goals[i].ID == goalID {
				doc.MartialArts.Goals[i].Completed = !doc.MartialArts.Goals[i].Completed
				break
			}
		}
	})
}

// RemoveMartialArtsGoal deletes a goal by id; missing id is a no-op.
func (s *Service) RemoveMartialArtsGoal(goalID int64) {
	s.mutate("remove_martial_arts_goal", func(doc *founder.Document, _ time.Time) {
		kept := doc.MartialArts.Goals[:0]
		for _, g := range doc.MartialArts.Goals {
			if g.ID != goalID {
				kept = append(kept, g)
			}
		}
		doc.MartialArts.Goals = kept
	})
}
