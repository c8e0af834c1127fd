package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/zaqqye/smart_timetable/internal/apperr"
)

func respondError(c *gin.Context, err error) {
	body := gin.H{"error": err.Error()}
	if kind := apperr.KindOf(err); kind != "" {
		body["kind"] = kind
	}
	c.JSON(apperr.Status(err), body)
}
