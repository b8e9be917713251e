package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/leadscout/internal/config"
	"github.com/octobees/leadscout/internal/database"
	"github.com/octobees/leadscout/internal/handler"
	"github.com/octobees/leadscout/internal/llm"
	middlewarepkg "github.com/octobees/leadscout/internal/middleware"
	"github.com/octobees/leadscout/internal/repository"
	"github.com/octobees/leadscout/internal/router"
	"github.com/octobees/leadscout/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	var runs repository.SearchRunsRepository = repository.NewMemorySearchRunsRepository()
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			cancel()
			logger.Fatal("failed to connect database", zap.Error(err))
		}
		if err := database.Migrate(ctx, pool); err != nil {
			cancel()
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		cancel()
		defer pool.Close()
		runs = repository.NewPGXSearchRunsRepository(pool)
	} else {
		logger.Info("DATABASE_URL not set, search history is kept in memory")
	}

	factory := llm.NewGenAIFactory(llm.WithTimeout(cfg.Models.Timeout))
	sanitizer := service.NewContactSanitizer(cfg.Pipeline.PhoneRegion)

	leadsService := service.NewLeadsService(factory,
		service.WithBatchSize(cfg.Pipeline.BatchSize),
		service.WithBatchDelay(cfg.Pipeline.BatchDelay),
		service.WithMapsModel(cfg.Models.Maps),
		service.WithSanitizer(sanitizer),
		service.WithLogger(logger.Named("leads")),
	)
	historyService := service.NewHistoryService(runs)
	pitchService := service.NewPitchService(factory, cfg.Models.Pitch, cfg.Pipeline.PitchDelay, logger.Named("pitches"))
	auditService := service.NewAuditService(factory, cfg.Models.Maps)
	queryParser := service.NewQueryParser(cfg.Pipeline.DefaultLocation)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger.Named("http")))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Leads:   handler.NewLeadsHandler(leadsService, historyService, queryParser, logger.Named("leads")),
		History: handler.NewHistoryHandler(historyService),
		Pitches: handler.NewPitchHandler(pitchService),
		Audits:  handler.NewAuditHandler(auditService),
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
