package planner

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/zaqqye/smart_timetable/internal/apperr"
	"github.com/zaqqye/smart_timetable/internal/logger"
	"github.com/zaqqye/smart_timetable/internal/models"
	"github.com/zaqqye/smart_timetable/internal/store"
	"github.com/zaqqye/smart_timetable/internal/tracker"
)

// Notifier is told about changes so live front ends can refresh.
type Notifier interface {
	ExamAdded(exam models.ExamRecord)
	ProgressUpdated(exam models.ExamRecord, rec models.ProgressRecord, summary tracker.Summary)
}

// Service runs each study-tracker operation: load the stores, compute,
// write back when needed.
type Service struct {
	ExamStore     *store.ExamStore
	ProgressStore *store.ProgressStore
	ParseMode     tracker.ParseMode
	Log           *logger.Logger
	Now           func() time.Time
	Notifier      Notifier
}

func New(exams *store.ExamStore, progress *store.ProgressStore, mode tracker.ParseMode, log *logger.Logger) *Service {
	return &Service{
		ExamStore:     exams,
		ProgressStore: progress,
		ParseMode:     mode,
		Log:           log,
		Now:           time.Now,
	}
}

func (s *Service) today() models.Date {
	return models.DateOf(s.Now())
}

// ExamInput carries the raw text of a new exam as typed by the user.
type ExamInput struct {
	Subject    string
	ExamDate   string
	DailyHours string
	TotalUnits string
}

func (s *Service) ListExams() ([]models.ExamRecord, error) {
	return s.ExamStore.ListExams()
}

func (s *Service) AddExam(in ExamInput) (models.ExamRecord, error) {
	date, err := models.ParseDate(in.ExamDate)
	if err != nil {
		return models.ExamRecord{}, apperr.Validationf("invalid date %q, use YYYY-MM-DD", in.ExamDate)
	}
	hours, err := strconv.ParseFloat(strings.TrimSpace(in.DailyHours), 64)
	if err != nil {
		return models.ExamRecord{}, apperr.Validationf("daily hours must be a number, got %q", in.DailyHours)
	}
	units, err := strconv.Atoi(strings.TrimSpace(in.TotalUnits))
	if err != nil {
		return models.ExamRecord{}, apperr.Validationf("total units must be an integer, got %q", in.TotalUnits)
	}

	exam, err := s.ExamStore.AddExam(in.Subject, date, hours, units)
	if err != nil {
		return models.ExamRecord{}, err
	}
	s.Log.Info("exam added", "exam_id", exam.ID, "subject", exam.Subject, "exam_date", exam.ExamDate.String())
	if s.Notifier != nil {
		s.Notifier.ExamAdded(exam)
	}
	return exam, nil
}

type CountdownEntry struct {
	Exam     models.ExamRecord
	DaysLeft int
	// Passed is set when the exam is today or already over.
	Passed bool
}

func (s *Service) Countdown() ([]CountdownEntry, error) {
	exams, err := s.ExamStore.ListExams()
	if err != nil {
		return nil, err
	}
	today := s.today()
	out := make([]CountdownEntry, 0, len(exams))
	for _, exam := range exams {
		days := tracker.DaysLeft(exam.ExamDate, today)
		out = append(out, CountdownEntry{Exam: exam, DaysLeft: days, Passed: days <= 0})
	}
	return out, nil
}

// Plan is today's suggestions plus the exams left out because they are
// today or past.
type Plan struct {
	Suggestions []tracker.Suggestion
	Excluded    []CountdownEntry
}

func (s *Service) Suggestions() (Plan, error) {
	exams, err := s.ExamStore.ListExams()
	if err != nil {
		return Plan{}, err
	}
	progress, err := s.ProgressStore.All()
	if err != nil {
		return Plan{}, err
	}
	today := s.today()
	plan := Plan{Suggestions: []tracker.Suggestion{}, Excluded: []CountdownEntry{}}
	for _, exam := range exams {
		sug, ok := tracker.DailySuggestion(exam, progress[exam.ID], today)
		if !ok {
			plan.Excluded = append(plan.Excluded, CountdownEntry{
				Exam:     exam,
				DaysLeft: tracker.DaysLeft(exam.ExamDate, today),
				Passed:   true,
			})
			continue
		}
		plan.Suggestions = append(plan.Suggestions, sug)
	}
	return plan, nil
}

// SelectExam resolves a 1-based menu choice against exams.
func SelectExam(exams []models.ExamRecord, choice string) (models.ExamRecord, error) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return models.ExamRecord{}, apperr.Selectionf("invalid selection %q", choice)
	}
	if n < 1 || n > len(exams) {
		return models.ExamRecord{}, apperr.Selectionf("selection %d out of range 1-%d", n, len(exams))
	}
	return exams[n-1], nil
}

func (s *Service) ExamByID(id string) (models.ExamRecord, error) {
	exams, err := s.ExamStore.ListExams()
	if err != nil {
		return models.ExamRecord{}, err
	}
	for _, exam := range exams {
		if exam.ID == id {
			return exam, nil
		}
	}
	return models.ExamRecord{}, apperr.Selectionf("exam %q not found", id)
}

type ProgressView struct {
	Exam    models.ExamRecord
	Record  models.ProgressRecord
	Summary tracker.Summary
}

func (s *Service) Progress(examID string) (ProgressView, error) {
	exam, err := s.ExamByID(examID)
	if err != nil {
		return ProgressView{}, err
	}
	rec, err := s.ProgressStore.GetProgress(exam.ID)
	if err != nil {
		return ProgressView{}, err
	}
	return ProgressView{Exam: exam, Record: rec, Summary: tracker.ProgressSummary(exam, rec)}, nil
}

type TrackResult struct {
	ProgressView
	Marking tracker.Marking
}

// TrackProgress applies a unit input ("all" or "1,2,3") to an exam. A
// rejected input adds nothing but still stamps lastUpdated.
func (s *Service) TrackProgress(examID, input string) (TrackResult, error) {
	exam, err := s.ExamByID(examID)
	if err != nil {
		return TrackResult{}, err
	}
	current, err := s.ProgressStore.GetProgress(exam.ID)
	if err != nil {
		return TrackResult{}, err
	}

	marking := tracker.MarkUnits(current.CompletedUnits, input, exam.TotalUnits, s.ParseMode)
	mode := store.MergeUnits
	if marking.All {
		mode = store.ReplaceUnits
	}
	rec, err := s.ProgressStore.UpdateProgress(exam.ID, marking.Units, exam.TotalUnits, mode)
	if err != nil {
		return TrackResult{}, err
	}

	summary := tracker.ProgressSummary(exam, rec)
	if marking.Invalid {
		s.Log.Warn("unit input rejected", "exam_id", exam.ID, "input", input, "parse_mode", s.ParseMode.String())
	}
	s.Log.Info("progress updated", "exam_id", exam.ID, "completed", summary.CompletedCount, "total", summary.TotalUnits)
	if s.Notifier != nil {
		s.Notifier.ProgressUpdated(exam, rec, summary)
	}
	return TrackResult{
		ProgressView: ProgressView{Exam: exam, Record: rec, Summary: summary},
		Marking:      marking,
	}, nil
}

type Report struct {
	Filename string
	Rows     []tracker.ReportRow
}

func (s *Service) Report() (Report, error) {
	exams, err := s.ExamStore.ListExams()
	if err != nil {
		return Report{}, err
	}
	progress, err := s.ProgressStore.All()
	if err != nil {
		return Report{}, err
	}
	today := s.today()
	return Report{
		Filename: tracker.ReportFilename(today),
		Rows:     tracker.ExportReport(exams, progress, today),
	}, nil
}

// ExportCSV writes today's report into dir and returns the file path.
func (s *Service) ExportCSV(dir string) (string, error) {
	report, err := s.Report()
	if err != nil {
		return "", err
	}
	if len(report.Rows) == 0 {
		return "", apperr.Validationf("no exams to export")
	}
	var buf bytes.Buffer
	if err := tracker.WriteCSV(&buf, report.Rows); err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	path := filepath.Join(dir, report.Filename)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	s.Log.Info("report exported", "path", path, "rows", len(report.Rows))
	return path, nil
}
