package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/api/response"
	"github.com/adaptiveui/tracker/internal/record"
	"github.com/adaptiveui/tracker/internal/touch"
)

// TouchHandler handles touch event endpoints.
type TouchHandler struct {
	service *touch.Service
	metrics *middleware.IngestMetrics
}

// NewTouchHandler creates a new TouchHandler.
func NewTouchHandler(service *touch.Service, metrics *middleware.IngestMetrics) *TouchHandler {
	return &TouchHandler{service: service, metrics: metrics}
}

// Create handles POST /api/touch - store a batch of touch events. The
// payload must carry the events under the touchData key.
func (h *TouchHandler) Create(w http.ResponseWriter, r *http.Request) {
	events, ok := decodeNamedArray[models.TouchEventCreateRequest](w, r, "touchData")
	if !ok {
		return
	}

	count, err := h.service.CreateBatch(r.Context(), events)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordStored("touch", count)
	response.BulkCreated(w, r, count, fmt.Sprintf("%d touch events stored", count))
}

// List handles GET /api/touch - list all touch events.
func (h *TouchHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.List(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(events), events)
}

// ListByType handles GET /api/touch/type/{type} - list touch events with
// an exactly matching gesture type.
func (h *TouchHandler) ListByType(w http.ResponseWriter, r *http.Request) {
	gestureType := chi.URLParam(r, "type")

	events, err := h.service.ListByType(r.Context(), gestureType)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.List(w, r, len(events), events)
}

// DeleteAll handles DELETE /api/touch - remove every touch event.
func (h *TouchHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.DeleteAll(r.Context())
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	h.metrics.RecordDeleted("touch", count)
	response.Deleted(w, r, count, fmt.Sprintf("%d touch events deleted", count))
}

// decodeNamedArray reads a body of the shape {<key>: [...]} and decodes
// the array elements. A missing key or a non-array value writes the 400
// malformed-payload envelope and returns ok=false.
func decodeNamedArray[T any](w http.ResponseWriter, r *http.Request, key string) ([]T, bool) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return nil, false
	}

	raw, present := body[key]
	if !present {
		response.FromError(w, r, fmt.Errorf("%w, expected a %q array", record.ErrMalformedPayload, key))
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		response.FromError(w, r, fmt.Errorf("%w, expected a %q array", record.ErrMalformedPayload, key))
		return nil, false
	}
	// A JSON null decodes to a nil slice without an error. Null is not an
	// array, so it gets the same rejection as a mis-typed value.
	if items == nil {
		response.FromError(w, r, fmt.Errorf("%w, expected a %q array", record.ErrMalformedPayload, key))
		return nil, false
	}
	return items, true
}
