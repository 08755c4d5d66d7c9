package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/quinfall/companion/internal/domain"
	"github.com/quinfall/companion/internal/logger"
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

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer so a failed encode never writes a
	// half-formed body
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
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

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError   = "Game API is temporarily unavailable. Please try again later."
	ErrMsgNotConfiguredError = "Game API credentials are not configured"
	ErrMsgNotAuthorizedError = "Game API rejected the configured credentials"

	// Storage messages
	ErrMsgUnknownLocationError   = "Unknown storage location"
	ErrMsgUnknownMaterialError   = "Unknown material"
	ErrMsgInsufficientItemsError = "Not enough items"
	ErrMsgInsufficientSpaceError = "Not enough storage space"
	ErrMsgWeightExceededError    = "Weight limit exceeded"
	ErrMsgSameLocationError      = "Source and destination are the same"

	// Crafting messages
	ErrMsgUnknownRecipeError = "Recipe not found"
	ErrMsgSkillTooLowError   = "Skill level too low for this recipe"
	ErrMsgToolTooLowError    = "Tool level too low for this recipe"

	// Persistence messages
	ErrMsgSaveNotFoundError       = "No save files found"
	ErrMsgUnsupportedVersionError = "Save file version is not supported"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// This function converts internal service errors to appropriate HTTP status codes
// and messages that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnknownLocation):
		return http.StatusBadRequest, ErrMsgUnknownLocationError
	case errors.Is(err, domain.ErrUnknownMaterial):
		return http.StatusBadRequest, ErrMsgUnknownMaterialError
	case errors.Is(err, domain.ErrInsufficientItems):
		return http.StatusBadRequest, ErrMsgInsufficientItemsError
	case errors.Is(err, domain.ErrInsufficientSpace):
		return http.StatusBadRequest, ErrMsgInsufficientSpaceError
	case errors.Is(err, domain.ErrWeightExceeded):
		return http.StatusBadRequest, ErrMsgWeightExceededError
	case errors.Is(err, domain.ErrSameLocation):
		return http.StatusBadRequest, ErrMsgSameLocationError
	case errors.Is(err, domain.ErrUnknownRecipe):
		return http.StatusBadRequest, ErrMsgUnknownRecipeError
	case errors.Is(err, domain.ErrSkillTooLow):
		return http.StatusConflict, ErrMsgSkillTooLowError
	case errors.Is(err, domain.ErrToolTooLow):
		return http.StatusConflict, ErrMsgToolTooLowError
	case errors.Is(err, domain.ErrSaveNotFound):
		return http.StatusNotFound, ErrMsgSaveNotFoundError
	case errors.Is(err, domain.ErrUnsupportedVersion):
		return http.StatusInternalServerError, ErrMsgUnsupportedVersionError
	case errors.Is(err, domain.ErrSyncUnavailable):
		return http.StatusBadGateway, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusConflict, ErrMsgNotConfiguredError
	case errors.Is(err, domain.ErrNotAuthorized):
		return http.StatusBadGateway, ErrMsgNotAuthorizedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Surface short free-form messages; anything long or system-level
	// collapses to the generic message
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	logger.FromContext(r.Context()).Error(opName, "error", err)
	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	respondError(w, statusCode, userMsg)
}
