// Package main provides the entrypoint for the adaptive UI tracker API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/adaptiveui/tracker/internal/api"
	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/appusage"
	"github.com/adaptiveui/tracker/internal/database"
	"github.com/adaptiveui/tracker/internal/device"
	"github.com/adaptiveui/tracker/internal/eyetracking"
	"github.com/adaptiveui/tracker/internal/sensor"
	"github.com/adaptiveui/tracker/internal/telemetry"
	"github.com/adaptiveui/tracker/internal/touch"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "tracker-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting tracker API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	listLimit := 0
	if v := os.Getenv("LIST_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatal().Str("value", v).Msg("LIST_LIMIT must be a positive integer")
		}
		listLimit = n
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}
	ingestMetrics, err := middleware.NewIngestMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize ingest metrics")
		os.Exit(1)
	}

	// Connect to database with bounded retry so a slow store start does not
	// kill the process, but a dead one does not hang it forever either
	dbConfig := database.ConfigFromEnv()
	pool, err := database.ConnectWithRetry(ctx, dbConfig, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("database connected")

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure schema")
	}

	// Keep probing the connection in the background; /health reports the result
	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	monitor := database.NewMonitor(pool, database.MonitorConfig{Logger: log})
	go monitor.Run(monitorCtx)

	// Initialize repositories and services
	deviceService := device.NewService(device.NewPostgresRepository(pool))
	sensorService := sensor.NewService(sensor.NewPostgresRepository(pool), listLimit)
	touchService := touch.NewService(touch.NewPostgresRepository(pool))
	eyeTrackingService := eyetracking.NewService(eyetracking.NewPostgresRepository(pool))
	appUsageService := appusage.NewService(appusage.NewPostgresRepository(pool), listLimit)
	log.Info().Msg("record services initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Logger:             log,
		ServiceName:        serviceName,
		Metrics:            metrics,
		IngestMetrics:      ingestMetrics,
		HealthSource:       monitor,
		DeviceService:      deviceService,
		SensorService:      sensorService,
		TouchService:       touchService,
		EyeTrackingService: eyeTrackingService,
		AppUsageService:    appUsageService,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Stop accepting requests first, then release the pool
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
