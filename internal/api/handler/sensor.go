package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/api/response"
	"github.com/adaptiveui/tracker/internal/sensor"
)

// SensorHandler handles sensor reading endpoints.
type SensorHandler struct {
	service *sensor.Service
	metrics *middleware.IngestMetrics
}

// NewSensorHandler creates a new SensorHandler.
func NewSensorHandler(service *sensor.Service, metrics *middleware.IngestMetrics) *SensorHandler {
	return &SensorHandler{service: service, metrics: metrics}
}

// Create handles POST /api/sensor - store one sensor reading.
func (h *SensorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.SensorReadingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}

	stored, err := h.service.Create(r.Context(), &input)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordStored("sensor", 1)
	response.Created(w, r, stored)
}

// CreateBulk handles POST /api/sensor/bulk - store a bare array of
// sensor readings.
func (h *SensorHandler) CreateBulk(w http.ResponseWriter, r *http.Request) {
	var inputs []models.SensorReadingCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		response.BadRequest(w, r, "invalid payload, expected an array of sensor readings")
		return
	}
	// A null body decodes to a nil slice without an error
	if inputs == nil {
		response.BadRequest(w, r, "invalid payload, expected an array of sensor readings")
		return
	}

	count, err := h.service.CreateBatch(r.Context(), inputs)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordStored("sensor", count)
	response.BulkCreated(w, r, count, fmt.Sprintf("%d sensor readings stored", count))
}

// List handles GET /api/sensor - list the latest sensor readings.
func (h *SensorHandler) List(w http.ResponseWriter, r *http.Request) {
	readings, err := h.service.List(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(readings), readings)
}

// ListByDevice handles GET /api/sensor/{deviceId}?start&end - list
// readings for one device, optionally bounded by an inclusive time range.
func (h *SensorHandler) ListByDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "deviceId")
	if deviceID == "" {
		response.BadRequest(w, r, "deviceId is required")
		return
	}

	var tr sensor.TimeRange
	if raw := r.URL.Query().Get("start"); raw != "" {
		t, ok := models.ParseFlexTime(raw)
		if !ok {
			response.BadRequest(w, r, "start must be an RFC3339 timestamp or epoch number")
			return
		}
		tr.Start = &t
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, ok := models.ParseFlexTime(raw)
		if !ok {
			response.BadRequest(w, r, "end must be an RFC3339 timestamp or epoch number")
			return
		}
		tr.End = &t
	}
	if tr.Start != nil && tr.End != nil && tr.End.Before(*tr.Start) {
		response.BadRequest(w, r, "end must not be before start")
		return
	}

	readings, err := h.service.ListByDevice(r.Context(), deviceID, tr)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(readings), readings)
}
