package tracker

import (
	"time"

	"founderos/internal/founder"
)

// ResetAll replaces the document with fresh defaults. Storage cleanup is the
// persistence layer's job; the listener is notified with the defaults so both
// backends converge on the reset state.
func (s *Service) ResetAll() {
	s.mutate("reset_all", func(doc *founder.Document, _ time.Time) {
		*doc = *founder.Defaults()
	})
}

// ImportAll overlays an exported document onto defaults and swaps it in. A
// payload that does not parse leaves the live document untouched and returns
// ErrInvalidImport. The overlay rule protects against older export files
// missing newer fields.
func (s *Service) ImportAll(raw []byte) error {
	imported, err := founder.Overlay(raw)
	if err != nil {
		return ErrInvalidImport
	}
	s.mutate("import_all", func(doc *founder.Document, now time.Time) {
		*doc = *imported
		recomputeDerived(doc, now)
	})
	return nil
}
