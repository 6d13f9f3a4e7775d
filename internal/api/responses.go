package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	app_errors "github.com/AlthariqFairuz/QA-RAG-with-deepseek/internal/errors"
)

// This file contains shared DTOs (Data Transfer Objects) for API responses
// and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the JSON structure for error messages. The "detail" key
// matches what existing frontends of this API already read.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusResponse defines a generic success response.
type StatusResponse struct {
	Status string `json:"status"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps business-layer errors to HTTP status codes. Pipeline failures keep
// their message so the client can see what went wrong; anything unexpected is
// reported generically.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = withoutSentinel(err, app_errors.ErrValidation)
	case errors.Is(err, app_errors.ErrTooLarge):
		statusCode = http.StatusRequestEntityTooLarge
		message = withoutSentinel(err, app_errors.ErrTooLarge)
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrBusy):
		statusCode = http.StatusServiceUnavailable
		message = app_errors.ErrBusy.Error()
	case errors.Is(err, app_errors.ErrStorage),
		errors.Is(err, app_errors.ErrExtraction),
		errors.Is(err, app_errors.ErrProcessing),
		errors.Is(err, app_errors.ErrGeneration):
		statusCode = http.StatusInternalServerError
		message = err.Error()
	default:
		statusCode = http.StatusInternalServerError
		message = app_errors.ErrInternal.Error()
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Detail: message})
}

// withoutSentinel drops the "<sentinel>: " prefix left by %w wrapping, so a
// client reads "No messages provided" rather than the category in front of it.
func withoutSentinel(err, sentinel error) string {
	msg := err.Error()
	if reason, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return reason
	}
	return msg
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
