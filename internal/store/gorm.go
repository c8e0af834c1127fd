package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zaqqye/smart_timetable/internal/database"
	"github.com/zaqqye/smart_timetable/internal/models"
)

// GormBackend keeps each document as one row of the documents table.
type GormBackend struct {
	DB *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{DB: db}
}

func (b *GormBackend) Load(name string) ([]byte, bool, error) {
	var doc models.Document
	err := b.DB.Where("name = ?", name).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load document %s: %w", name, err)
	}
	return []byte(doc.Body), true, nil
}

func (b *GormBackend) Save(name string, data []byte) error {
	doc := models.Document{Name: name, Body: data}
	err := b.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("save document %s: %w", name, err)
	}
	return nil
}

func (b *GormBackend) Ensure(name string, initial []byte) error {
	if _, err := database.SeedDocument(b.DB, name, initial); err != nil {
		return fmt.Errorf("seed document %s: %w", name, err)
	}
	return nil
}
