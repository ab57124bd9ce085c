package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"neuro-assist/config"
	_ "neuro-assist/docs" // Swagger docs
	"neuro-assist/internal/httpserver"
	"neuro-assist/internal/journal/repository"
	memoryRepo "neuro-assist/internal/journal/repository/memory"
	postgreRepo "neuro-assist/internal/journal/repository/postgre"
	"neuro-assist/pkg/gemini"
	"neuro-assist/pkg/log"
)

// @title       Neuro Assist API
// @description Daily care coordination for neurodivergent individuals: routines, emotions, check-in questions, chat feedback, and progress analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Neuro Assist...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage: selected once, no call site branches on the driver again
	var repo repository.Repository
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		repo, err = postgreRepo.New(ctx, cfg.Storage.PostgresDSN, logger)
		if err != nil {
			logger.Error(ctx, "Failed to initialize postgres storage: ", err)
			return
		}
		logger.Info(ctx, "Storage driver: postgres")
	default:
		repo = memoryRepo.New(logger)
		logger.Info(ctx, "Storage driver: memory")
	}

	// 4. Gemini client (optional: without a key every domain falls back to
	// its deterministic local path)
	llm := gemini.NewClient(cfg.Gemini.APIKey)
	if llm.Configured() {
		logger.Infof(ctx, "Gemini model: %s", llm.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY not set: classification, questions, and reports use local fallbacks")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Repo:        repo,
		LLM:         llm,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
