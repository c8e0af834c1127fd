package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/smart_timetable/internal/planner"
)

type ProgressController struct {
	Svc *planner.Service
}

type trackProgressRequest struct {
	Units FlexibleString `json:"units" binding:"required"`
}

func progressBody(view planner.ProgressView) gin.H {
	return gin.H{
		"examId":         view.Exam.ID,
		"subject":        view.Exam.Subject,
		"completedUnits": view.Record.CompletedUnits,
		"lastUpdated":    view.Record.LastUpdated,
		"summary":        view.Summary,
	}
}

func (pc *ProgressController) GetProgress(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	view, err := pc.Svc.Progress(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progressBody(view))
}

func (pc *ProgressController) TrackProgress(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	var req trackProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := pc.Svc.TrackProgress(id, req.Units.String())
	if err != nil {
		respondError(c, err)
		return
	}
	body := progressBody(res.ProgressView)
	body["all"] = res.Marking.All
	body["invalid"] = res.Marking.Invalid
	if len(res.Marking.Rejected) > 0 {
		body["rejected"] = res.Marking.Rejected
	}
	c.JSON(http.StatusOK, body)
}
