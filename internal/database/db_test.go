package database

import (
	"path/filepath"
	"testing"

	"github.com/zaqqye/smart_timetable/internal/config"
	"github.com/zaqqye/smart_timetable/internal/models"
)

func TestConnectRejectsFileBackend(t *testing.T) {
	if _, err := Connect(&config.Config{StoreBackend: config.BackendFile}); err == nil {
		t.Fatal("expected error for file backend")
	}
}

func TestSeedDocumentOnce(t *testing.T) {
	cfg := &config.Config{StoreBackend: config.BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "db", "t.db")}
	db, err := Connect(cfg)
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}

	created, err := SeedDocument(db, "exams", []byte("[]"))
	if err != nil || !created {
		t.Fatalf("first seed: created=%v err=%v", created, err)
	}
	created, err = SeedDocument(db, "exams", []byte(`[{"id":"x"}]`))
	if err != nil || created {
		t.Fatalf("second seed: created=%v err=%v", created, err)
	}

	var doc models.Document
	if err := db.Where("name = ?", "exams").First(&doc).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Body) != "[]" {
		t.Fatalf("seed overwrote body: %s", doc.Body)
	}
}
