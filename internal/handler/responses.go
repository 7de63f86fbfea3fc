package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Scavenger_Go/internal/domain"
	"github.com/osse101/Scavenger_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// headers are already sent, so all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps err to a client response
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action, "error", err)
	} else {
		log.Warn(action, "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgScavengerNotFoundErr = "Scavenger not found"
	ErrMsgScavengerExistsErr   = "A scavenger with that name already exists"
	ErrMsgMalformedArtifactErr = "Artifact or log line is malformed"
	ErrMsgInvalidArtifactErr   = "Artifact cannot be stored"
	ErrMsgInvalidPolicyErr     = "Unknown policy. Use rational or risk_taking"
	ErrMsgSelfTradeErr         = "A scavenger cannot trade with itself"
	ErrMsgInvalidInputErr      = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage converts domain errors to an HTTP status and a
// message safe to show clients. Unrecognised errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrScavengerNotFound):
		return http.StatusNotFound, ErrMsgScavengerNotFoundErr
	case errors.Is(err, domain.ErrScavengerExists):
		return http.StatusConflict, ErrMsgScavengerExistsErr
	case errors.Is(err, domain.ErrMalformedInput):
		return http.StatusBadRequest, ErrMsgMalformedArtifactErr
	case errors.Is(err, domain.ErrInvalidArtifact):
		return http.StatusBadRequest, ErrMsgInvalidArtifactErr
	case errors.Is(err, domain.ErrInvalidPolicy):
		return http.StatusBadRequest, ErrMsgInvalidPolicyErr
	case errors.Is(err, domain.ErrSelfTrade):
		return http.StatusBadRequest, ErrMsgSelfTradeErr
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputErr
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
