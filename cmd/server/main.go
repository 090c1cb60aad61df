package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"propquery/internal/config"
	"propquery/internal/handler"
	"propquery/internal/logger"
	"propquery/internal/queryparser"
	"propquery/internal/service"

	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	log.Info("Property query parser",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize services
	queryService := service.NewQueryService(
		queryparser.New(),
		log,
		service.WithPropertiesPath(cfg.Search.PropertiesPath),
		service.WithDefaultCity(cfg.Search.DefaultCity),
	)

	log.Info("Services initialized",
		"properties_path", cfg.Search.PropertiesPath,
		"default_city", cfg.Search.DefaultCity,
	)

	router := handler.NewRouter(cfg.Server, queryService, log, handler.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	// Start server
	go func() {
		log.Info("Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server", "timeout", cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		return
	}

	log.Info("Server stopped")
}
