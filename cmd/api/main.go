package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elifarslancelik/GARLIC-Q/internal/api"
	"github.com/elifarslancelik/GARLIC-Q/internal/config"
	"github.com/elifarslancelik/GARLIC-Q/internal/database"
	"github.com/elifarslancelik/GARLIC-Q/internal/face"
	"github.com/elifarslancelik/GARLIC-Q/internal/generation"
	"github.com/elifarslancelik/GARLIC-Q/internal/repository"
	"github.com/elifarslancelik/GARLIC-Q/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting GARLIC-Q API",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database pool
	pool, err := database.NewPool(ctx, database.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Embedding extractor; a facenet backend is probed here so a dead
	// sidecar fails the boot
	ext, err := face.NewExtractor(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	// Identity services
	identityRepo := repository.NewIdentityRepository(pool, cfg.Capacity)
	enrollment := service.NewEnrollmentService(identityRepo, ext, cfg.Capacity)
	authentication := service.NewAuthenticationService(identityRepo, ext, cfg.RecognitionThreshold)

	// Generation backend; the server still boots when Ollama is down, the
	// generation endpoints return 503 until it comes back
	genConfig := generation.DefaultConfig()
	genConfig.BaseURL = cfg.OllamaURL
	genConfig.Model = cfg.OllamaModel
	genClient := generation.NewClient(genConfig)
	if err := genClient.Ping(ctx); err != nil {
		logger.Warn("generation backend unavailable at boot", slog.Any("error", err))
	}
	genService := generation.NewService(genClient)

	// Setup router
	router := api.NewRouter(logger, &api.Dependencies{
		Enroller:      enrollment,
		Authenticator: authentication,
		Generation:    genService,
		DB:            pool,
	})
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
