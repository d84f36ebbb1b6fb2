// Package response provides utilities for HTTP response handling. Every
// endpoint writes the same envelope: success plus payload fields, or
// success:false plus an error string. Storage-layer error kinds are mapped
// to statuses here and nowhere else.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adaptiveui/tracker/internal/api/middleware"
	"github.com/adaptiveui/tracker/internal/api/models"
	"github.com/adaptiveui/tracker/internal/record"
)

// JSON writes a JSON response with the given status code.
// Includes X-Request-Id header for correlation.
func JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	requestID := middleware.GetRequestID(r.Context())
	if requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Item writes a 200 OK envelope wrapping one record.
func Item(w http.ResponseWriter, r *http.Request, data interface{}) {
	JSON(w, r, http.StatusOK, models.ItemResponse{Success: true, Data: data})
}

// Created writes a 201 Created envelope wrapping one stored record.
func Created(w http.ResponseWriter, r *http.Request, data interface{}) {
	JSON(w, r, http.StatusCreated, models.ItemResponse{Success: true, Data: data})
}

// List writes a 200 OK envelope wrapping a result set and its length.
func List(w http.ResponseWriter, r *http.Request, count int, data interface{}) {
	JSON(w, r, http.StatusOK, models.ListResponse{Success: true, Count: count, Data: data})
}

// BulkCreated writes a 201 Created envelope reporting a bulk insert.
func BulkCreated(w http.ResponseWriter, r *http.Request, count int, message string) {
	JSON(w, r, http.StatusCreated, models.BulkResponse{Success: true, Count: count, Message: message})
}

// Deleted writes a 200 OK envelope reporting a delete-all.
func Deleted(w http.ResponseWriter, r *http.Request, count int64, message string) {
	JSON(w, r, http.StatusOK, models.DeleteResponse{Success: true, Count: count, Message: message})
}

// Error writes a failure envelope with the given status.
func Error(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, models.ErrorResponse{Success: false, Error: message})
}

// BadRequest writes a 400 failure envelope.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusBadRequest, message)
}

// NotFound writes a 404 failure envelope.
func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	Error(w, r, http.StatusNotFound, message)
}

// InternalError writes a 500 failure envelope. The message is fixed so
// driver errors do not leak to clients.
func InternalError(w http.ResponseWriter, r *http.Request) {
	Error(w, r, http.StatusInternalServerError, "an internal server error occurred")
}

// FromError maps a service error to its failure envelope:
// validation and malformed-payload errors are the caller's fault (400),
// missed lookups are 404, anything else is the store's fault (500).
func FromError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *record.ValidationError
		notFoundErr   *record.NotFoundError
	)
	switch {
	case errors.As(err, &validationErr):
		BadRequest(w, r, validationErr.Error())
	case errors.Is(err, record.ErrMalformedPayload):
		BadRequest(w, r, err.Error())
	case errors.As(err, &notFoundErr):
		NotFound(w, r, notFoundErr.Error())
	default:
		InternalError(w, r)
	}
}
