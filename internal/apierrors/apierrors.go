// Package apierrors provides structured API error handling.
package apierrors

import (
	"encoding/json"
	"net/http"

	"github.com/orgdesk/backend/internal/validate"
)

// APIError represents a structured API error response.
type APIError struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

func (e *APIError) Error() string {
	return e.Message
}

// Write writes the error response.
func (e *APIError) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	json.NewEncoder(w).Encode(e)
}

// Common errors

func NewBadRequest(message string) *APIError {
	return &APIError{
		Status:     "Bad request",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewUnauthorized(message string) *APIError {
	return &APIError{
		Status:     "Bad request",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbidden(message string) *APIError {
	return &APIError{
		Status:     "Forbidden",
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewNotFound(message string) *APIError {
	return &APIError{
		Status:     "Not found",
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewInternal(message string) *APIError {
	return &APIError{
		Status:     "error",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// validationResponse is the body for field-level validation failures.
type validationResponse struct {
	Errors []validate.FieldError `json:"errors"`
}

// WriteValidation writes a 422 response naming each failing field.
func WriteValidation(w http.ResponseWriter, errs []validate.FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(validationResponse{Errors: errs})
}
