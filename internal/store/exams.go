package store

import (
	"math"
	"strings"
	"time"

	"github.com/zaqqye/smart_timetable/internal/apperr"
	"github.com/zaqqye/smart_timetable/internal/models"
	"github.com/zaqqye/smart_timetable/internal/utils"
)

// MaxTotalUnits caps the unit count of one exam; marking "all" builds the
// full 1..totalUnits list.
const MaxTotalUnits = 100000

// ExamStore is the ordered, append-only list of exams.
type ExamStore struct {
	doc   document[[]models.ExamRecord]
	Now   func() time.Time
	NewID func() (string, error)
}

func NewExamStore(b Backend, path string) *ExamStore {
	return &ExamStore{
		doc: document[[]models.ExamRecord]{
			backend: b,
			key:     path,
			empty:   func() []models.ExamRecord { return []models.ExamRecord{} },
		},
		Now:   time.Now,
		NewID: utils.NewID,
	}
}

// ListExams returns every exam in insertion order.
func (s *ExamStore) ListExams() ([]models.ExamRecord, error) {
	exams, err := s.doc.load()
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []models.ExamRecord{}
	}
	return exams, nil
}

func (s *ExamStore) AddExam(subject string, examDate models.Date, dailyHours float64, totalUnits int) (models.ExamRecord, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return models.ExamRecord{}, apperr.Validationf("subject must not be empty")
	}
	if math.IsNaN(dailyHours) || math.IsInf(dailyHours, 0) || dailyHours <= 0 {
		return models.ExamRecord{}, apperr.Validationf("daily hours must be a positive number, got %v", dailyHours)
	}
	if totalUnits < 1 || totalUnits > MaxTotalUnits {
		return models.ExamRecord{}, apperr.Validationf("total units must be between 1 and %d, got %d", MaxTotalUnits, totalUnits)
	}

	id, err := s.NewID()
	if err != nil {
		return models.ExamRecord{}, err
	}
	exam := models.ExamRecord{
		ID:         id,
		Subject:    subject,
		ExamDate:   examDate,
		DailyHours: dailyHours,
		TotalUnits: totalUnits,
		CreatedAt:  models.DateOf(s.Now()),
	}
	err = s.WithStore(func(exams *[]models.ExamRecord) error {
		*exams = append(*exams, exam)
		return nil
	})
	if err != nil {
		return models.ExamRecord{}, err
	}
	return exam, nil
}

// WithStore runs fn over the loaded exam list and persists the result.
func (s *ExamStore) WithStore(fn func(exams *[]models.ExamRecord) error) error {
	return s.doc.with(fn)
}
