package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/zaqqye/smart_timetable/internal/config"
	"github.com/zaqqye/smart_timetable/internal/logger"
	"github.com/zaqqye/smart_timetable/internal/menu"
	"github.com/zaqqye/smart_timetable/internal/planner"
	"github.com/zaqqye/smart_timetable/internal/store"
	"github.com/zaqqye/smart_timetable/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New("cli")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	exams, progress, err := store.Open(cfg)
	if err != nil {
		logg.Fatal("store open failed", "backend", cfg.StoreBackend, "error", err)
	}

	svc := planner.New(exams, progress, tracker.ParseModeFromString(cfg.UnitParseMode), logg)
	if err := menu.New(svc, os.Stdin, os.Stdout, cfg.ExportDir).Run(); err != nil {
		logg.Error("menu stopped", "error", err)
		os.Exit(1)
	}
}
