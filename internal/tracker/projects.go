package tracker

import (
	"time"

	"founderos/internal/founder"
)

// UpdateProject shallow-merges patch into the named project, creating the
// project record when it does not exist yet. KPI changes re-derive the
// revenue and user achievements.
func (s *Service) UpdateProject(projectID string, patch ProjectPatch) {
	s.mutate("update_project", func(doc *founder.Document, now time.Time) {
		p := ensureProject(doc, projectID)
		applyString(&p.Name, patch.Name)
		applyString(&p.Icon, patch.Icon)
		applyString(&p.Description, patch.Description)
		applyInt(&p.Users, patch.Users)
		applyInt(&p.Units, patch.Units)
		applyInt(&p.Revenue, patch.Revenue)
		applyInt(&p.MRR, patch.MRR)
		applyString(&p.PrototypeStatus, patch.PrototypeStatus)
		recomputeDerived(doc, now)
	})
}

// RecordProjectSnapshot appends a dated KPI capture to the project's history.
func (s *Service) RecordProjectSnapshot(projectID string) {
	s.mutate("project_snapshot", func(doc *founder.Document, now time.Time) {
		p, ok := doc.Projects[projectID]
		if !ok || p == nil {
			return
		}
		p.History = append(p.History, founder.KPISnapshot{
			Date:    now.Format("2006-01-02"),
			Revenue: p.Revenue,
			Users:   p.Users,
		})
	})
}

// AddProjectItem appends a new item to the named collection with a
// creation-time id, completed=false, and medium priority. The item is
// returned so callers can reference its id. Add always succeeds: a missing
// project is created on the way.
func (s *Service) AddProjectItem(projectID string, kind founder.ItemKind, text string) (founder.ProjectItem, error) {
	if !kind.Valid() {
		return founder.ProjectItem{}, ErrInvalidItemKind
	}
	var item founder.ProjectItem
	s.mutate("add_project_item", func(doc *founder.Document, now time.Time) {
		p := ensureProject(doc, projectID)
		item = founder.ProjectItem{
			ID:        now.UnixMilli(),
			Text:      text,
			Completed: false,
			CreatedAt: now.Format(time.RFC3339),
			Priority:  "medium",
		}
		p.SetItems(kind, append(p.Items(kind), item))
	})
	return item, nil
}

// ToggleProjectItem flips an item's completed flag. Missing project or id is
// a no-op.
func (s *Service) ToggleProjectItem(projectID string, kind founder.ItemKind, itemID int64) error {
	if !kind.Valid() {
		return ErrInvalidItemKind
	}
	s.mutate("toggle_project_item", func(doc *founder.Document, _ time.Time) {
		p, ok := doc.Projects[projectID]
		if !ok || p == nil {
			return
		}
		items := p.Items(kind)
		for i := range items {
			if items[i].ID == itemID {
				items[i].Completed = !items[i].Completed
				break
			}
		}
	})
	return nil
}

// DeleteProjectItem removes an item by id. Missing project or id is a no-op;
// the other two collections are never touched.
func (s *Service) DeleteProjectItem(projectID string, kind founder.ItemKind, itemID int64) error {
	if !kind.Valid() {
		return ErrInvalidItemKind
	}
	s.mutate("delete_project_item", func(doc *founder.Document, _ time.Time) {
		p, ok := doc.Projects[projectID]
		if !ok || p == nil {
			return
		}
		items := p.Items(kind)
		kept := items[:0]
		for _, item := range items {
			if item.ID != itemID {
				kept = append(kept, item)
			}
		}
		p.SetItems(kind, kept)
	})
	return nil
}

func ensureProject(doc *founder.Document, projectID string) *founder.Project {
	p, ok := doc.Projects[projectID]
	if !ok || p == nil {
		p = &founder.Project{
			Tasks:    []founder.ProjectItem{},
			Features: []founder.ProjectItem{},
			Bugs:     []founder.ProjectItem{},
			History:  []founder.KPISnapshot{},
		}
		doc.Projects[projectID] = p
	}
	return p
}
