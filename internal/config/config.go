package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Store documents
	ExamStorePath     string `env:"EXAM_STORE_PATH" envDefault:"data/exams.json"`
	ProgressStorePath string `env:"PROGRESS_STORE_PATH" envDefault:"data/progress.json"`
	StoreBackend      string `env:"STORE_BACKEND" envDefault:"file"` // file, sqlite or postgres
	SQLitePath        string `env:"SQLITE_PATH" envDefault:"data/timetable.db"`

	// Postgres (STORE_BACKEND=postgres)
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"timetable_db"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	ExportDir     string `env:"EXPORT_DIR" envDefault:"."`
	UnitParseMode string `env:"UNIT_PARSE_MODE" envDefault:"all_or_nothing"`
	LogMode       string `env:"LOG_MODE" envDefault:"development"`
}

const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.StoreBackend {
	case BackendFile, BackendSQLite, BackendPostgres:
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}
	return cfg, nil
}

// PostgresDSN renders the connection string used by gorm's postgres driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
