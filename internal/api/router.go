package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/meridian-cargo/website/docs"
	"github.com/meridian-cargo/website/internal/api/handler"
	"github.com/meridian-cargo/website/internal/api/middleware"
	"github.com/meridian-cargo/website/internal/core/ports"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Tracking  ports.TrackingService
	Renderer  echo.Renderer
	StaticDir string

	// Limiter throttles /api when set.
	Limiter middleware.Limiter

	ReadinessChecks map[string]handler.CheckFunc

	// Registerer and Gatherer default to the prometheus default registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)
	e.Renderer = d.Renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "site",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Pages ---
	pageHandler := handler.NewPageHandler()
	for _, p := range handler.Pages {
		e.GET(p.Path, pageHandler.Render(p.Template))
	}
	if d.StaticDir != "" {
		e.Static("/static", d.StaticDir)
	}

	// --- Tracking API ---
	trackingHandler := handler.NewTrackingHandler(d.Tracking)
	apiGroup := e.Group("/api")
	if d.Limiter != nil {
		apiGroup.Use(middleware.RateLimit(d.Limiter, d.Logger))
	}
	apiGroup.GET("/track/:tracking_id", trackingHandler.Track)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.ReadinessChecks)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – can we serve lookups?

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: d.Gatherer,
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
