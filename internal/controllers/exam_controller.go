package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/smart_timetable/internal/planner"
)

type ExamController struct {
	Svc *planner.Service
}

type createExamRequest struct {
	Subject    string         `json:"subject" binding:"required"`
	ExamDate   string         `json:"examDate" binding:"required"`
	DailyHours FlexibleString `json:"dailyHours" binding:"required"`
	TotalUnits FlexibleString `json:"totalUnits" binding:"required"`
}

func (ec *ExamController) ListExams(c *gin.Context) {
	exams, err := ec.Svc.ListExams()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": exams, "meta": gin.H{"total": len(exams)}})
}

func (ec *ExamController) CreateExam(c *gin.Context) {
	var req createExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exam, err := ec.Svc.AddExam(planner.ExamInput{
		Subject:    req.Subject,
		ExamDate:   req.ExamDate,
		DailyHours: req.DailyHours.String(),
		TotalUnits: req.TotalUnits.String(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exam)
}

func (ec *ExamController) Countdown(c *gin.Context) {
	entries, err := ec.Svc.Countdown()
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(entries))
	for _, e := range entries {
		out = append(out, gin.H{
			"examId":     e.Exam.ID,
			"subject":    e.Exam.Subject,
			"examDate":   e.Exam.ExamDate,
			"dailyHours": e.Exam.DailyHours,
			"daysLeft":   e.DaysLeft,
			"passed":     e.Passed,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

func (ec *ExamController) Suggestions(c *gin.Context) {
	plan, err := ec.Svc.Suggestions()
	if err != nil {
		respondError(c, err)
		return
	}
	excluded := make([]gin.H, 0, len(plan.Excluded))
	for _, e := range plan.Excluded {
		excluded = append(excluded, gin.H{
			"examId":   e.Exam.ID,
			"subject":  e.Exam.Subject,
			"daysLeft": e.DaysLeft,
			"reason":   "exam is today or has passed",
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": plan.Suggestions, "excluded": excluded})
}
