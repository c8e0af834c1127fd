package models

import (
	"time"

	"gorm.io/datatypes"
)

// Document stores a whole persisted document (exam list or progress map)
// as one row when a database backend is configured.
type Document struct {
	Name      string         `gorm:"size:255;primaryKey"`
	Body      datatypes.JSON
	CreatedAt time.Time
	UpdatedAt time.Time
}
