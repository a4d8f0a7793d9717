package tracker

import (
	"time"

	"founderos/internal/founder"
)

// AddMedicine appends a medicine to the tracked list with a creation-time id.
func (s *Service) AddMedicine(name, dosage, timing string) founder.MedicineDef {
	var def founder.MedicineDef
	s.mutate("add_medicine", func(doc *founder.Document, now time.Time) {
		def = founder.MedicineDef{
			ID:     now.UnixMilli(),
			Name:   name,
			Dosage: dosage,
			Timing: timing,
		}
		doc.Medicine.List = append(doc.Medicine.List, def)
	})
	return def
}

// RemoveMedicine deletes a medicine from the list by id. Past intake log
// entries keep their ids; a missing id is a no-op.
func (s *Service) RemoveMedicine(medicineID int64) {
	s.mutate("remove_medicine", func(doc *founder.Document, _ time.Time) {
		kept := doc.Medicine.List[:0]
		for _, m := range doc.Medicine.List {
			if m.ID != medicineID {
				kept = append(kept, m)
			}
		}
		doc.Medicine.List = kept
	})
}

// ToggleMedicineLog flips the intake mark for a medicine on a date: an
// existing entry is removed, otherwise a taken entry is stamped with the
// current local time.
func (s *Service) ToggleMedicineLog(dateKey string, medicineID int64) {
	s.mutate("toggle_medicine_log", func(doc *founder.Document, now time.Time) {
		dayLog := doc.Medicine.Log[dateKey]
		if dayLog == nil {
			dayLog = map[int64]founder.MedicineLog{}
		}
		if _, ok := dayLog[medicineID]; ok {
			delete(dayLog, medicineID)
		} else {
			dayLog[medicineID] = founder.MedicineLog{Taken: true, Time: now.Format("15:04")}
		}
		doc.Medicine.Log[dateKey] = dayLog
	})
}
