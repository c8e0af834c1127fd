package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/smart_timetable/internal/config"
	"github.com/zaqqye/smart_timetable/internal/controllers"
	"github.com/zaqqye/smart_timetable/internal/planner"
	"github.com/zaqqye/smart_timetable/internal/ws"
)

func Register(r *gin.Engine, svc *planner.Service, hub *ws.ProgressHub, cfg *config.Config) {
	examCtrl := &controllers.ExamController{Svc: svc}
	progressCtrl := &controllers.ProgressController{Svc: svc}
	reportCtrl := &controllers.ReportController{Svc: svc, ExportDir: cfg.ExportDir}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/exams", examCtrl.ListExams)
		api.POST("/exams", examCtrl.CreateExam)
		api.GET("/exams/:id/progress", progressCtrl.GetProgress)
		api.POST("/exams/:id/progress", progressCtrl.TrackProgress)

		api.GET("/countdown", examCtrl.Countdown)
		api.GET("/suggestions", examCtrl.Suggestions)

		api.GET("/report", reportCtrl.Download)
		api.POST("/report/export", reportCtrl.Export)
	}

	r.GET("/ws/progress", ws.ProgressHandler(hub))
}
