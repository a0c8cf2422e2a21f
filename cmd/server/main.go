package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/channelhub/subscribers-api/internal/api"
	"github.com/channelhub/subscribers-api/internal/config"
	"github.com/channelhub/subscribers-api/internal/store"
)

//go:embed web
var webFS embed.FS

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	// Initialize MongoDB
	ctx := context.Background()
	mongoStore, err := store.NewMongo(ctx, cfg.MongoURL)
	if err != nil {
		logger.Error("failed to connect to mongo", "error", err)
		os.Exit(1)
	}
	defer mongoStore.Close(ctx)

	// An unreachable store at startup is not fatal: requests fail until it
	// comes up, and the failure is observable here and on /healthz.
	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := mongoStore.Ping(pingCtx); err != nil {
		logger.Error("mongo not reachable yet", "error", err)
	} else {
		logger.Info("connected to MongoDB")
	}
	cancelPing()

	homeFS, err := fs.Sub(webFS, "web")
	if err != nil {
		logger.Error("failed to load homepage assets", "error", err)
		os.Exit(1)
	}

	// Setup router
	router := api.NewRouter(mongoStore, mongoStore, homeFS)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
