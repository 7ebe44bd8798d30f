// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inventory/config"
	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/router/handler"
	"inventory/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShelfHandler      *handler.ShelfHandler
	DeviceHandler     *handler.DeviceHandler
	SearchListHandler *handler.SearchListHandler
	AccountHandler    *handler.AccountHandler
	ReportHandler     *handler.ReportHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Recorder
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	shelfHandler      *handler.ShelfHandler
	deviceHandler     *handler.DeviceHandler
	searchListHandler *handler.SearchListHandler
	accountHandler    *handler.AccountHandler
	reportHandler     *handler.ReportHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Recorder
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shelfHandler:      params.ShelfHandler,
		deviceHandler:     params.DeviceHandler,
		searchListHandler: params.SearchListHandler,
		accountHandler:    params.AccountHandler,
		reportHandler:     params.ReportHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication
	adminOnly := r.authMiddleware.RequireAdmin

	shelvesGroup := apiV1.Group("/shelves")
	{
		shelvesGroup.GET("", r.shelfHandler.ListShelves)
		shelvesGroup.POST("", r.shelfHandler.CreateShelf, adminOnly)
		shelvesGroup.GET("/:id", r.shelfHandler.GetShelf)
		shelvesGroup.PUT("/:id", r.shelfHandler.UpdateShelf, adminOnly)
		shelvesGroup.DELETE("/:id", r.shelfHandler.DeleteShelf, adminOnly)
		shelvesGroup.GET("/:id/label.png", r.shelfHandler.ShelfLabel)
	}

	apiV1.POST("/labels/resolve", r.shelfHandler.ResolveLabel)

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.AddDevices)
		devicesGroup.GET("", r.deviceHandler.SearchDevices)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice, adminOnly)
		devicesGroup.POST("/:id/move", r.deviceHandler.MoveDevice)
		devicesGroup.POST("/:id/retire", r.deviceHandler.RetireDevice)
		devicesGroup.POST("/:id/restore", r.deviceHandler.RestoreDevice)
		devicesGroup.GET("/:id/move-targets", r.deviceHandler.ListMoveTargets)
		devicesGroup.GET("/:id/history.pdf", r.deviceHandler.DeviceHistoryPDF)
	}

	searchListGroup := apiV1.Group("/search-list")
	{
		searchListGroup.GET("", r.searchListHandler.GetSearchList)
		searchListGroup.POST("", r.searchListHandler.AddToSearchList)
		searchListGroup.DELETE("", r.searchListHandler.RemoveFromSearchList)
		searchListGroup.POST("/retire", r.searchListHandler.RetireSearchList)
	}

	apiV1.GET("/profile", r.accountHandler.GetProfile)

	// The use case checks the caller's claim as well.
	apiV1.PUT("/admin/users/:uid/admin-claim", r.accountHandler.SetAdminClaim, adminOnly)

	apiV1.GET("/reports/inventory.xlsx", r.reportHandler.InventoryWorkbook, adminOnly)
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if !metrics.Enabled(r.config) {
		return
	}

	e.GET(metrics.Path(r.config), echo.WrapHandler(r.metrics.Handler()))
}
