package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/castromatias32878-collab/WebVastum2025/internal/config"
	"github.com/castromatias32878-collab/WebVastum2025/internal/handler"
	middlewarepkg "github.com/castromatias32878-collab/WebVastum2025/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Contacts *handler.ContactsHandler
	Logos    *handler.LogosHandler
	Health   *handler.HealthHandler
}

// New builds the echo instance with the shared middleware chain and routes.
func New(cfg *config.Config, handlers Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(middlewarepkg.Metrics())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	if cfg.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	}

	Register(e, handlers)
	return e
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, handlers Handlers) {
	e.GET("/healthz", handlers.Health.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/", handlers.Health.Root)

	api.POST("/contacto", handlers.Contacts.Create)
	api.GET("/contactos", handlers.Contacts.List)

	api.POST("/logos", handlers.Logos.Create)
	api.GET("/logos", handlers.Logos.List)
	api.DELETE("/logos/:logo_id", handlers.Logos.Delete)
}
