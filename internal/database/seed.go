package database

import (
	"gorm.io/gorm"

	"github.com/zaqqye/smart_timetable/internal/models"
)

// SeedDocument creates the named document with body when no row exists yet.
// It reports whether a row was created.
func SeedDocument(db *gorm.DB, name string, body []byte) (bool, error) {
	var count int64
	if err := db.Model(&models.Document{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	rec := models.Document{Name: name, Body: body}
	if err := db.Create(&rec).Error; err != nil {
		return false, err
	}
	return true, nil
}
