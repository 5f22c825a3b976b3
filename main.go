package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/Nitesh1413/ai-data-cleaner/ai"
	"github.com/Nitesh1413/ai-data-cleaner/ai/heuristic"
	"github.com/Nitesh1413/ai-data-cleaner/internal/config"
	"github.com/Nitesh1413/ai-data-cleaner/internal/profiling"
	"github.com/Nitesh1413/ai-data-cleaner/ports"
	"github.com/Nitesh1413/ai-data-cleaner/ui"
)

func main() {
	// .env is optional; real deployments set environment variables.
	if err := godotenv.Load(); err != nil {
		log.Printf("[Main] no .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[Main] failed to load configuration: %v", err)
	}

	profiler := profiling.NewProfiler()
	if cfg.Profiler.Parallel {
		profiler = profiling.NewParallelProfiler()
	}

	var insights ports.InsightGenerator
	if cfg.AI.OpenAIKey != "" {
		log.Printf("[Main] insight generation via model %s", cfg.AI.Model)
		insights = ai.NewInsightService(cfg.AI)
	} else {
		log.Printf("[Main] OPENAI_API_KEY not set, using heuristic insights")
		insights = heuristic.NewGenerator()
	}

	app := ui.NewApp(ui.Config{
		Port:        cfg.Server.Port,
		MaxUploadMB: cfg.Upload.MaxUploadMB,
	}, profiler, insights)

	if err := app.Serve(cfg.Server.Port); err != nil {
		log.Fatalf("[Main] server exited: %v", err)
	}
}
