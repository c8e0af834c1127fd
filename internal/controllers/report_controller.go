package controllers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zaqqye/smart_timetable/internal/planner"
	"github.com/zaqqye/smart_timetable/internal/tracker"
)

type ReportController struct {
	Svc       *planner.Service
	ExportDir string
}

// Download streams today's report as a CSV attachment.
func (rc *ReportController) Download(c *gin.Context) {
	report, err := rc.Svc.Report()
	if err != nil {
		respondError(c, err)
		return
	}
	var buf bytes.Buffer
	if err := tracker.WriteCSV(&buf, report.Rows); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+report.Filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Export writes the report file into the configured export directory.
func (rc *ReportController) Export(c *gin.Context) {
	path, err := rc.Svc.ExportCSV(rc.ExportDir)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "exported", "path": path})
}
