package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zaqqye/smart_timetable/internal/config"
	"github.com/zaqqye/smart_timetable/internal/logger"
	"github.com/zaqqye/smart_timetable/internal/middleware"
	"github.com/zaqqye/smart_timetable/internal/planner"
	"github.com/zaqqye/smart_timetable/internal/routes"
	"github.com/zaqqye/smart_timetable/internal/store"
	"github.com/zaqqye/smart_timetable/internal/tracker"
	"github.com/zaqqye/smart_timetable/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logg.Sync()

	exams, progress, err := store.Open(cfg)
	if err != nil {
		logg.Fatal("store open failed", "backend", cfg.StoreBackend, "error", err)
	}

	hub := ws.NewProgressHub(logg)
	go hub.Run()

	svc := planner.New(exams, progress, tracker.ParseModeFromString(cfg.UnitParseMode), logg)
	svc.Notifier = hub

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logg))
	routes.Register(r, svc, hub, cfg)

	logg.Info("listening", "port", cfg.Port, "backend", cfg.StoreBackend)
	if err := r.Run(":" + cfg.Port); err != nil {
		logg.Fatal("server exited with error", "error", err)
	}
}
