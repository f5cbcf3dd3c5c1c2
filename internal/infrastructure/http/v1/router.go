// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"substock/internal/domain/auth"
	"substock/internal/domain/inventory"
	"substock/internal/domain/ledger"
	"substock/internal/domain/requisition"
	"substock/internal/domain/settings"
	"substock/internal/infrastructure/http/v1/handlers"
	"substock/internal/infrastructure/http/v1/middleware"
	"substock/internal/infrastructure/storage/postgres"
	"substock/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	JWTValidator middleware.JWTValidator

	AuthService        *auth.Service
	LedgerService      *ledger.Service
	SettingsService    *settings.Service
	InventoryService   *inventory.Service
	RequisitionService *requisition.Service

	Development bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Development {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(base, cfg.AuthService)
	ledgerHandler := handlers.NewLedgerHandler(base, cfg.LedgerService)
	settingsHandler := handlers.NewSettingsHandler(base, cfg.SettingsService)
	inventoryHandler := handlers.NewInventoryHandler(base, cfg.InventoryService)
	requisitionHandler := handlers.NewRequisitionHandler(base, cfg.RequisitionService)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Public auth routes
		v1.POST("/auth/login", authHandler.Login)

		// All other routes require a valid token
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		protected.GET("/auth/me", authHandler.Me)

		protected.GET("/inventory", inventoryHandler.List)
		protected.GET("/inventory/summary", inventoryHandler.Summary)
		protected.GET("/inventory/drugs", inventoryHandler.Drugs)

		protected.GET("/ledger", ledgerHandler.List)
		protected.POST("/ledger", ledgerHandler.Append)

		protected.GET("/settings", settingsHandler.Snapshot)

		protected.POST("/requisitions", requisitionHandler.Create)
		protected.GET("/requisitions/:id", requisitionHandler.Get)
		protected.PUT("/requisitions/:id/lines", requisitionHandler.SetManualOrder)
		protected.POST("/requisitions/:id/apply-suggestion", requisitionHandler.ApplySuggestion)
		protected.POST("/requisitions/:id/toggle", requisitionHandler.ToggleSelected)
		protected.POST("/requisitions/:id/select-all", requisitionHandler.SelectAll)
		protected.POST("/requisitions/:id/finalize", requisitionHandler.Finalize)
		protected.DELETE("/requisitions/:id", requisitionHandler.Abandon)

		// Admin-only surface: user management, configuration and ledger removal
		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())

		admin.POST("/auth/register", authHandler.Register)
		admin.POST("/ledger/import", ledgerHandler.Import)
		admin.DELETE("/ledger/:id", ledgerHandler.Delete)
		admin.PUT("/settings/drugs", settingsHandler.SetDrugConfig)
		admin.POST("/settings/requesters", settingsHandler.AddRequester)
		admin.DELETE("/settings/requesters/:id", settingsHandler.RemoveRequester)
	}

	return router
}
