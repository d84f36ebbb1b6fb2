package handler

import (
	"net/http"
	"time"

	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/api/response"
	"github.com/adaptiveui/tracker/internal/database"
)

// HealthSource reports store connectivity and process uptime. It is
// satisfied by database.Monitor.
type HealthSource interface {
	Health() database.Health
	Uptime() time.Duration
}

// OpsHandler serves the root banner, ping, and liveness endpoints.
type OpsHandler struct {
	health HealthSource
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(health HealthSource) *OpsHandler {
	return &OpsHandler{health: health}
}

// Root handles GET / with a plain-text banner.
func (h *OpsHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Adaptive UI Tracker API is active"))
}

// Ping handles GET /api/ping.
func (h *OpsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Ping{
		Message:   "pong",
		Database:  "postgres",
		Timestamp: models.Timestamp(time.Now().UTC()),
	})
}

// Health handles GET /health. The service stays up while the store is
// unreachable; the probe reports degraded instead of failing.
func (h *OpsHandler) Health(w http.ResponseWriter, r *http.Request) {
	state := models.DatabaseConnected
	status := models.HealthStatusOK
	if h.health.Health() != database.HealthConnected {
		state = models.DatabaseDisconnected
		status = models.HealthStatusDegraded
	}

	response.JSON(w, r, http.StatusOK, models.Health{
		Status:        status,
		Database:      state,
		UptimeSeconds: h.health.Uptime().Seconds(),
	})
}
