package store

import (
	"github.com/zaqqye/smart_timetable/internal/config"
	"github.com/zaqqye/smart_timetable/internal/database"
)

// Open picks the backend named by cfg, creates both documents if missing and
// returns the stores.
func Open(cfg *config.Config) (*ExamStore, *ProgressStore, error) {
	paths := Paths{ExamStorePath: cfg.ExamStorePath, ProgressStorePath: cfg.ProgressStorePath}

	var b Backend = NewFileBackend()
	if cfg.StoreBackend != config.BackendFile {
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, nil, err
		}
		b = NewGormBackend(db)
	}

	if err := Bootstrap(b, paths); err != nil {
		return nil, nil, err
	}
	return NewExamStore(b, paths.ExamStorePath), NewProgressStore(b, paths.ProgressStorePath), nil
}
