package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/ghomem/lgc/adapters/stats/engine"
	"github.com/ghomem/lgc/app"
	"github.com/ghomem/lgc/internal/config"
	"github.com/ghomem/lgc/ui"
)

func main() {
	// Load environment variables from .env file (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	eng, err := engine.NewComparisonEngine(cfg.Engine.VarianceMethod, cfg.Engine.IntervalMethod, cfg.Engine.SearchStepPct)
	if err != nil {
		log.Fatalf("Failed to build comparison engine: %v", err)
	}

	service := app.NewComparisonService(eng)
	server := ui.NewServer(cfg, service)

	if err := server.Run(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
