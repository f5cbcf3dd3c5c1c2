// Package main is the entry point for the sub-stock API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"substock/internal/config"
	"substock/internal/domain/auth"
	"substock/internal/domain/inventory"
	"substock/internal/domain/ledger"
	"substock/internal/domain/requisition"
	"substock/internal/domain/settings"
	"substock/internal/feed"
	v1 "substock/internal/infrastructure/http/v1"
	"substock/internal/infrastructure/storage/postgres"
	"substock/pkg/docnum"
	"substock/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting substock server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	// --- Repositories ---
	ledgerRepo := postgres.NewLedgerRepo(pool)
	settingsRepo := postgres.NewSettingsRepo(pool)
	userRepo := postgres.NewUserRepo(pool)

	// --- Change feed and services ---
	hub := feed.NewHub()

	ledgerService := ledger.NewService(ledgerRepo, hub)
	settingsService := settings.NewService(settingsRepo, hub)
	inventoryService := inventory.NewService(ledgerService, settingsService, hub)
	requisitionService := requisition.NewService(
		inventoryService,
		settingsService,
		docnum.New(docnum.DefaultConfig("REQ")),
	)

	// Build the initial aggregate before accepting traffic.
	if err := inventoryService.Refresh(ctx); err != nil {
		log.Fatalw("failed to build initial inventory state", "error", err)
	}

	// --- Auth ---
	jwtConfig := auth.DefaultJWTConfig(cfg.JWTSecret)
	jwtConfig.AccessTokenTTL = cfg.AccessTokenTTL
	jwtService := auth.NewJWTService(jwtConfig)
	authService := auth.NewService(userRepo, jwtService, auth.DefaultServiceConfig())

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:               pool,
		Logger:             log,
		JWTValidator:       jwtService,
		AuthService:        authService,
		LedgerService:      ledgerService,
		SettingsService:    settingsService,
		InventoryService:   inventoryService,
		RequisitionService: requisitionService,
		Development:        cfg.IsDevelopment(),
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
