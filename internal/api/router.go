// Package api provides the HTTP API for the adaptive UI tracker.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/adaptiveui/tracker/internal/api/handler"
	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/appusage"
	"github.com/adaptiveui/tracker/internal/device"
	"github.com/adaptiveui/tracker/internal/eyetracking"
	"github.com/adaptiveui/tracker/internal/sensor"
	"github.com/adaptiveui/tracker/internal/touch"
)

// maxBodyBytes caps ingest payloads at 10 MiB.
const maxBodyBytes = 10 << 20

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger             zerolog.Logger
	ServiceName        string
	Metrics            *middleware.Metrics
	IngestMetrics      *middleware.IngestMetrics
	HealthSource       handler.HealthSource
	DeviceService      *device.Service
	SensorService      *sensor.Service
	TouchService       *touch.Service
	EyeTrackingService *eyetracking.Service
	AppUsageService    *appusage.Service
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "tracker-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers
	r.Use(middleware.ContentTypeJSON)      // JSON content type
	r.Use(middleware.RequireJSON)          // Reject non-JSON ingest bodies
	r.Use(chimiddleware.RequestSize(maxBodyBytes))

	opsHandler := handler.NewOpsHandler(cfg.HealthSource)
	deviceHandler := handler.NewDeviceHandler(cfg.DeviceService, cfg.IngestMetrics)
	sensorHandler := handler.NewSensorHandler(cfg.SensorService, cfg.IngestMetrics)
	touchHandler := handler.NewTouchHandler(cfg.TouchService, cfg.IngestMetrics)
	eyeTrackingHandler := handler.NewEyeTrackingHandler(cfg.EyeTrackingService, cfg.IngestMetrics)
	appUsageHandler := handler.NewAppUsageHandler(cfg.AppUsageService, cfg.IngestMetrics)

	// Ingest endpoints get a higher budget than reads
	ingestRateLimit := middleware.RateLimitByIP(middleware.IngestRateLimit)     // 600 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit) // 100 req/min

	r.Get("/", opsHandler.Root)
	r.Get("/health", opsHandler.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", opsHandler.Ping)

		r.Route("/device", func(r chi.Router) {
			r.With(ingestRateLimit).Post("/", deviceHandler.Create)
			r.With(standardRateLimit).Get("/", deviceHandler.List)
			r.With(standardRateLimit).Get("/{deviceId}", deviceHandler.Get)
		})

		r.Route("/sensor", func(r chi.Router) {
			r.With(ingestRateLimit).Post("/", sensorHandler.Create)
			r.With(ingestRateLimit).Post("/bulk", sensorHandler.CreateBulk)
			r.With(standardRateLimit).Get("/", sensorHandler.List)
			r.With(standardRateLimit).Get("/{deviceId}", sensorHandler.ListByDevice)
		})

		r.Route("/touch", func(r chi.Router) {
			r.With(ingestRateLimit).Post("/", touchHandler.Create)
			r.With(standardRateLimit).Get("/", touchHandler.List)
			r.With(standardRateLimit).Get("/type/{type}", touchHandler.ListByType)
			r.With(ingestRateLimit).Delete("/", touchHandler.DeleteAll)
		})

		r.Route("/eyetracking", func(r chi.Router) {
			r.With(ingestRateLimit).Post("/", eyeTrackingHandler.Create)
			r.With(standardRateLimit).Get("/", eyeTrackingHandler.List)
			r.With(standardRateLimit).Get("/direction/{direction}", eyeTrackingHandler.ListByDirection)
			r.With(ingestRateLimit).Delete("/", eyeTrackingHandler.DeleteAll)
		})

		r.Route("/appusage", func(r chi.Router) {
			r.With(ingestRateLimit).Post("/", appUsageHandler.Create)
			r.With(ingestRateLimit).Post("/bulk", appUsageHandler.CreateBulk)
			r.With(standardRateLimit).Get("/", appUsageHandler.List)
			r.With(standardRateLimit).Get("/{deviceId}", appUsageHandler.ListByDevice)
		})
	})

	return r
}
