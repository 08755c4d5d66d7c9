package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/quinfall/companion/internal/logger"
)

// ValidationErrorResponse is returned for requests that decode cleanly but
// fail struct validation, mapping each offending field to a message.
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeRequest decodes a JSON request body into req and validates it.
// Unknown fields are rejected so client typos surface immediately instead
// of being silently dropped.
//
// A non-nil return means the error response has already been written and
// the handler should return without writing anything else.
func decodeRequest(w http.ResponseWriter, r *http.Request, req interface{}, action string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", action), "error", err)
		http.Error(w, ErrMsgInvalidRequest, http.StatusBadRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("%s request failed validation", action), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// queryParam returns the named query parameter, or fallback when absent.
func queryParam(r *http.Request, name, fallback string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return fallback
}
