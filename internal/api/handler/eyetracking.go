package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/api/response"
	"github.com/adaptiveui/tracker/internal/eyetracking"
)

// EyeTrackingHandler handles eye tracking sample endpoints.
type EyeTrackingHandler struct {
	service *eyetracking.Service
	metrics *middleware.IngestMetrics
}

// NewEyeTrackingHandler creates a new EyeTrackingHandler.
func NewEyeTrackingHandler(service *eyetracking.Service, metrics *middleware.IngestMetrics) *EyeTrackingHandler {
	return &EyeTrackingHandler{service: service, metrics: metrics}
}

// Create handles POST /api/eyetracking - store a batch of gaze samples.
// The payload must carry the samples under the eyeTrackingData key.
func (h *EyeTrackingHandler) Create(w http.ResponseWriter, r *http.Request) {
	samples, ok := decodeNamedArray[models.EyeTrackingSampleCreateRequest](w, r, "eyeTrackingData")
	if !ok {
		return
	}

	count, err := h.service.CreateBatch(r.Context(), samples)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordStored("eyetracking", count)
	response.BulkCreated(w, r, count, fmt.Sprintf("%d eye tracking samples stored", count))
}

// List handles GET /api/eyetracking - list all gaze samples.
func (h *EyeTrackingHandler) List(w http.ResponseWriter, r *http.Request) {
	samples, err := h.service.List(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(samples), samples)
}

// ListByDirection handles GET /api/eyetracking/direction/{direction} -
// list gaze samples whose stored direction matches exactly.
func (h *EyeTrackingHandler) ListByDirection(w http.ResponseWriter, r *http.Request) {
	direction := chi.URLParam(r, "direction")

	samples, err := h.service.ListByDirection(r.Context(), direction)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(samples), samples)
}

// DeleteAll handles DELETE /api/eyetracking - remove every gaze sample.
func (h *EyeTrackingHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.DeleteAll(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordDeleted("eyetracking", count)
	response.Deleted(w, r, count, fmt.Sprintf("%d eye tracking samples deleted", count))
}
