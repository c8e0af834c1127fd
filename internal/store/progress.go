package store

import (
	"time"

	"github.com/zaqqye/smart_timetable/internal/models"
)

type UpdateMode int

const (
	// MergeUnits unions the new units into the stored ones.
	MergeUnits UpdateMode = iota
	// ReplaceUnits overwrites the stored units ("mark all").
	ReplaceUnits
)

// ProgressStore maps exam id to completion state.
type ProgressStore struct {
	doc document[models.ProgressDocument]
	Now func() time.Time
}

func NewProgressStore(b Backend, path string) *ProgressStore {
	return &ProgressStore{
		doc: document[models.ProgressDocument]{
			backend: b,
			key:     path,
			empty:   func() models.ProgressDocument { return models.ProgressDocument{} },
		},
		Now: time.Now,
	}
}

func (s *ProgressStore) All() (models.ProgressDocument, error) {
	doc, err := s.doc.load()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = models.ProgressDocument{}
	}
	return doc, nil
}

// GetProgress never fails for an unknown exam id; it returns an empty record.
func (s *ProgressStore) GetProgress(examID string) (models.ProgressRecord, error) {
	doc, err := s.All()
	if err != nil {
		return models.ProgressRecord{}, err
	}
	rec, ok := doc[examID]
	if !ok {
		return models.ProgressRecord{CompletedUnits: []int{}}, nil
	}
	rec.CompletedUnits = models.NormalizeUnits(rec.CompletedUnits)
	return rec, nil
}

// UpdateProgress drops units outside [1, totalUnits], merges or replaces
// according to mode, stamps lastUpdated with today and persists.
func (s *ProgressStore) UpdateProgress(examID string, units []int, totalUnits int, mode UpdateMode) (models.ProgressRecord, error) {
	var out models.ProgressRecord
	err := s.WithStore(func(doc models.ProgressDocument) error {
		rec := doc[examID]
		valid := make([]int, 0, len(units))
		for _, u := range units {
			if u >= 1 && u <= totalUnits {
				valid = append(valid, u)
			}
		}
		if mode == MergeUnits {
			valid = append(rec.CompletedUnits, valid...)
		}
		today := models.DateOf(s.Now())
		rec.CompletedUnits = models.NormalizeUnits(valid)
		rec.LastUpdated = &today
		doc[examID] = rec
		out = rec
		return nil
	})
	return out, err
}

// WithStore runs fn over the loaded mapping and persists the result.
func (s *ProgressStore) WithStore(fn func(doc models.ProgressDocument) error) error {
	return s.doc.with(func(doc *models.ProgressDocument) error {
		if *doc == nil {
			*doc = models.ProgressDocument{}
		}
		return fn(*doc)
	})
}
