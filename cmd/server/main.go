// Package main initializes and starts the catalog HTTP server, setting
// up configuration, logging, the database connection, repositories,
// services and handlers.
package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/mzaleska/catalog/internal/config"
	"github.com/mzaleska/catalog/internal/db"
	"github.com/mzaleska/catalog/internal/imageprobe"
	"github.com/mzaleska/catalog/internal/logger"
	"github.com/mzaleska/catalog/internal/repository"
	"github.com/mzaleska/catalog/internal/server/handler/http"
	"github.com/mzaleska/catalog/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	buildVersion, buildTime := version, buildDate
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildTime == "" {
		buildTime = "N/A"
	}
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildTime)

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("jwt signing secret is required, set JWT_SECRET or -s")
	}

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Repair rating counters in the background.
	db.StartRatingReconciler(ctx, postgresDB, time.Hour, zapLogger)

	// Initialize repositories.
	itemRepo := repository.NewPostgresItemRepository(postgresDB)
	opinionRepo := repository.NewPostgresOpinionRepository(postgresDB)
	userRepo := repository.NewPostgresUserRepository(postgresDB)

	// Initialize business-logic services.
	prober := imageprobe.New(5 * time.Second)
	itemService := service.NewItemService(itemRepo, prober)
	opinionService := service.NewOpinionService(opinionRepo, itemRepo)
	authService := service.NewAuthService(userRepo)

	// Create HTTP handlers.
	itemHandler := &http.ItemHandler{Service: itemService, Log: zapLogger}
	opinionHandler := &http.OpinionHandler{Service: opinionService, Log: zapLogger}
	authHandler := &http.AuthHandler{Service: authService, JWTSecret: options.JWTSecret, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(itemHandler, opinionHandler, authHandler, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown", zap.Error(err))
	}
	if err := postgresDB.Close(); err != nil {
		zapLogger.Error("closing database", zap.Error(err))
	}
	zapLogger.Info("server stopped")
}
