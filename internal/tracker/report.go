package tracker

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/zaqqye/smart_timetable/internal/models"
)

var ReportHeader = []string{
	"Subject", "Exam_Date", "Days_Left", "Total_Units", "Completed_Units", "Progress_%", "Daily_Hours",
}

type ReportRow struct {
	Subject        string
	ExamDate       models.Date
	DaysLeft       int
	TotalUnits     int
	CompletedUnits int
	Progress       float64
	DailyHours     float64
}

// ExportReport builds one row per exam in store order. Exams without a
// progress entry count as zero completion.
func ExportReport(exams []models.ExamRecord, progress models.ProgressDocument, today models.Date) []ReportRow {
	rows := make([]ReportRow, 0, len(exams))
	for _, exam := range exams {
		summary := ProgressSummary(exam, progress[exam.ID])
		rows = append(rows, ReportRow{
			Subject:        exam.Subject,
			ExamDate:       exam.ExamDate,
			DaysLeft:       DaysLeft(exam.ExamDate, today),
			TotalUnits:     exam.TotalUnits,
			CompletedUnits: summary.CompletedCount,
			Progress:       summary.Percentage,
			DailyHours:     exam.DailyHours,
		})
	}
	return rows
}

func ReportFilename(today models.Date) string {
	return "study_plan_" + today.String() + ".csv"
}

func (r ReportRow) Record() []string {
	return []string{
		r.Subject,
		r.ExamDate.String(),
		strconv.Itoa(r.DaysLeft),
		strconv.Itoa(r.TotalUnits),
		strconv.Itoa(r.CompletedUnits),
		formatReal(r.Progress),
		formatReal(r.DailyHours),
	}
}

func WriteCSV(w io.Writer, rows []ReportRow) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(ReportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(r.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatReal prints the shortest exact representation, always with a
// decimal point (30 -> "30.0").
func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
