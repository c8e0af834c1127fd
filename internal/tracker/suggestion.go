package tracker

import "github.com/zaqqye/smart_timetable/internal/models"

// Suggestion is today's study plan for one upcoming exam.
type Suggestion struct {
	ExamID         string  `json:"examId"`
	Subject        string  `json:"subject"`
	DaysLeft       int     `json:"daysLeft"`
	UnitsPerDay    int     `json:"unitsPerDay"`
	NextUnit       int     `json:"nextUnit"`
	ReviewUnit     int     `json:"reviewUnit"`
	StudyHours     float64 `json:"studyHours"`
	CompletedCount int     `json:"completedCount"`
	TotalUnits     int     `json:"totalUnits"`
}

// DailySuggestion proposes the next unit to study and the unit to review.
// ok is false for exams that are today or already past.
func DailySuggestion(exam models.ExamRecord, progress models.ProgressRecord, today models.Date) (Suggestion, bool) {
	days := DaysLeft(exam.ExamDate, today)
	if days <= 0 {
		return Suggestion{}, false
	}

	done := make(map[int]struct{}, len(progress.CompletedUnits))
	for _, u := range progress.CompletedUnits {
		done[u] = struct{}{}
	}
	// falls back to unit 1 once everything is done
	next := 1
	for u := 1; u <= exam.TotalUnits; u++ {
		if _, ok := done[u]; !ok {
			next = u
			break
		}
	}

	return Suggestion{
		ExamID:         exam.ID,
		Subject:        exam.Subject,
		DaysLeft:       days,
		UnitsPerDay:    max(1, exam.TotalUnits/days),
		NextUnit:       next,
		ReviewUnit:     max(1, next-1),
		StudyHours:     exam.DailyHours,
		CompletedCount: len(progress.CompletedUnits),
		TotalUnits:     exam.TotalUnits,
	}, true
}
