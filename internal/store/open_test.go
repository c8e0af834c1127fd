package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zaqqye/smart_timetable/internal/config"
)

func TestOpenFileBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		StoreBackend:      config.BackendFile,
		ExamStorePath:     filepath.Join(dir, "data", "exams.json"),
		ProgressStorePath: filepath.Join(dir, "data", "progress.json"),
	}
	exams, progress, err := Open(cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := os.Stat(cfg.ExamStorePath); err != nil {
		t.Fatalf("exam document not created: %v", err)
	}
	list, err := exams.ListExams()
	if err != nil || len(list) != 0 {
		t.Fatalf("list: %v %v", list, err)
	}
	all, err := progress.All()
	if err != nil || len(all) != 0 {
		t.Fatalf("all: %v %v", all, err)
	}
}
