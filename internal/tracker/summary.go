package tracker

import "github.com/zaqqye/smart_timetable/internal/models"

type Summary struct {
	Percentage     float64 `json:"percentage"`
	CompletedCount int     `json:"completedCount"`
	TotalUnits     int     `json:"totalUnits"`
}

func ProgressSummary(exam models.ExamRecord, progress models.ProgressRecord) Summary {
	s := Summary{
		CompletedCount: len(progress.CompletedUnits),
		TotalUnits:     exam.TotalUnits,
	}
	if exam.TotalUnits > 0 {
		s.Percentage = float64(s.CompletedCount) / float64(exam.TotalUnits) * 100
	}
	return s
}
