package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/api/response"
	"github.com/adaptiveui/tracker/internal/record"
)

// requestWithContext creates an HTTP request that has been processed by the RequestID middleware
// to populate the context with a request ID.
func requestWithContext(t *testing.T, method, path string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()

	var processedReq *http.Request
	handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		processedReq = r
	}))
	handler.ServeHTTP(rec, req)

	rec = httptest.NewRecorder()

	return processedReq, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	return resp
}

func TestJSON_IncludesRequestID(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/test")

	response.JSON(rec, req, http.StatusOK, map[string]string{"message": "hello"})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header to be set")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}
}

func TestCreated_WrapsData(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodPost, "/test")

	response.Created(rec, req, map[string]string{"id": "abc"})

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if !resp.Success {
		t.Error("expected success true")
	}
	if resp.Data["id"] != "abc" {
		t.Errorf("expected wrapped data, got %v", resp.Data)
	}
}

func TestList_IncludesCount(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/test")

	response.List(rec, req, 2, []string{"a", "b"})

	var resp models.ListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
}

func TestFromError_Validation(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodPost, "/test")

	err := &record.ValidationError{Errors: []record.FieldError{
		{Field: "deviceId", Message: "is required"},
	}}
	response.FromError(rec, req, err)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Success {
		t.Error("expected success false")
	}
	if resp.Error != "validation failed: deviceId is required" {
		t.Errorf("unexpected error message %q", resp.Error)
	}
}

func TestFromError_MalformedPayload(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodPost, "/test")

	response.FromError(rec, req, record.ErrMalformedPayload)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestFromError_NotFound(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/test")

	response.FromError(rec, req, &record.NotFoundError{Resource: "device"})

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
	resp := decodeError(t, rec)
	if resp.Error != "device not found" {
		t.Errorf("unexpected error message %q", resp.Error)
	}
}

func TestFromError_WrappedNotFound(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/test")

	wrapped := errors.Join(errors.New("lookup failed"), &record.NotFoundError{Resource: "device"})
	response.FromError(rec, req, wrapped)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404 for a wrapped not-found error, got %d", rec.Code)
	}
}

func TestFromError_Internal(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/test")

	response.FromError(rec, req, errors.New("connection refused: 10.0.0.5:5432"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	// Driver detail must not leak to clients
	resp := decodeError(t, rec)
	if resp.Error != "an internal server error occurred" {
		t.Errorf("expected the fixed internal error message, got %q", resp.Error)
	}
}
