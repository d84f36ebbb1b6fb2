package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/api/response"
	"github.com/adaptiveui/tracker/internal/appusage"
)

// AppUsageHandler handles app usage event endpoints.
type AppUsageHandler struct {
	service *appusage.Service
	metrics *middleware.IngestMetrics
}

// NewAppUsageHandler creates a new AppUsageHandler.
func NewAppUsageHandler(service *appusage.Service, metrics *middleware.IngestMetrics) *AppUsageHandler {
	return &AppUsageHandler{service: service, metrics: metrics}
}

// Create handles POST /api/appusage - store a single app usage event.
func (h *AppUsageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.AppUsageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	event, err := h.service.Create(r.Context(), &req)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordStored("appusage", 1)
	response.Created(w, r, event)
}

// CreateBulk handles POST /api/appusage/bulk - store a batch of app
// usage events sent as a bare JSON array.
func (h *AppUsageHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var reqs []models.AppUsageCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		response.BadRequest(w, r, "invalid payload, expected an array of app usage events")
		return
	}
	// A null body decodes to a nil slice without an error
	if reqs == nil {
		response.BadRequest(w, r, "invalid payload, expected an array of app usage events")
		return
	}

	count, err := h.service.CreateBatch(r.Context(), reqs)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordStored("appusage", count)
	response.BulkCreated(w, r, count, fmt.Sprintf("%d app usage events stored", count))
}

// List handles GET /api/appusage - list recent app usage events.
func (h *AppUsageHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(events), events)
}

// ListByDevice handles GET /api/appusage/{deviceId} - list app usage
// events recorded by one device.
func (h *AppUsageHandler) ListByDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceId")

	events, err := h.service.ListByDevice(r.Context(), deviceID)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(events), events)
}
