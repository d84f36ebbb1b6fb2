// Package handler provides HTTP handlers for the tracker API.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/api/response"
	"github.com/adaptiveui/tracker/internal/device"
)

// DeviceHandler handles device metadata endpoints.
type DeviceHandler struct {
	service *device.Service
	metrics *middleware.IngestMetrics
}

// NewDeviceHandler creates a new DeviceHandler.
func NewDeviceHandler(service *device.Service, metrics *middleware.IngestMetrics) *DeviceHandler {
	return &DeviceHandler{service: service, metrics: metrics}
}

// Create handles POST /api/device - store one device observation.
func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.DeviceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	stored, err := h.service.Create(r.Context(), &input)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordStored("device", 1)
	response.Created(w, r, stored)
}

// List handles GET /api/device - list all device observations.
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	devices, err := h.service.List(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(devices), devices)
}

// Get handles GET /api/device/{deviceId} - fetch the latest observation
// for one device, 404 if the device has never reported.
func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceId")
	if deviceID == "" {
		response.BadRequest(w, r, "deviceId is required")
		return
	}

	d, err := h.service.GetByDeviceID(r.Context(), deviceID)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Item(w, r, d)
}
