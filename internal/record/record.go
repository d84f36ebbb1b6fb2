// Package record defines the error kinds shared by all telemetry record
// stores and services. The API layer maps these to HTTP statuses in one
// place; nothing else should inspect them.
package record

import (
	"errors"
	"strings"
)

// ErrMalformedPayload indicates a bulk endpoint was called without its
// expected array field, or with a non-array value in its place.
var ErrMalformedPayload = errors.New("malformed payload")

// NotFoundError indicates a single-record lookup missed. It is distinct
// from an empty list result.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// FieldError describes a validation failure on one field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError indicates a record violates its kind's required-field,
// enum, or type constraints.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+" "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
