package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/zaqqye/smart_timetable/internal/config"
	"github.com/zaqqye/smart_timetable/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)}
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return gorm.Open(postgres.Open(cfg.PostgresDSN()), gcfg)
	case config.BackendSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		return gorm.Open(sqlite.Open(cfg.SQLitePath), gcfg)
	}
	return nil, fmt.Errorf("backend %q has no database", cfg.StoreBackend)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Document{})
}
