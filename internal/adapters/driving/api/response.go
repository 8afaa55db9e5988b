package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/custodia-labs/strindex/internal/core/domain"
	"github.com/custodia-labs/strindex/internal/logger"
)

// Response messages.
const (
	msgInvalidBody      = "Invalid request body or missing 'value' field"
	msgInvalidType      = "Invalid data type for 'value', must be string"
	msgAlreadyExists    = "String already exists in the system"
	msgNotFound         = "String does not exist in the system"
	msgInvalidParameter = "Invalid query parameter values or types"
	msgUnparsable       = "Unable to parse natural language query"
	msgConflicting      = "Query parsed but resulted in conflicting filters"
	msgTooManyRequests  = "Too Many Requests"
	msgInternal         = "Internal Server Error"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Message string `json:"message"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("encoding response: %v", err)
	}
}

// writeMessage writes a JSON error response.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Message: message})
}

// writeError translates a service error into a status and message.
// Order matters: ErrInvalidValueType wraps ErrInvalidInput.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("%s %s (id=%s): %v", r.Method, r.URL.Path, RequestID(r.Context()), err)
	}
	writeMessage(w, status, message)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidValueType):
		return http.StatusUnprocessableEntity, msgInvalidType
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidBody
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, msgAlreadyExists
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrInvalidParameter):
		return http.StatusBadRequest, msgInvalidParameter
	case errors.Is(err, domain.ErrUnparsablePhrase):
		return http.StatusBadRequest, msgUnparsable
	case errors.Is(err, domain.ErrConflictingFilter):
		return http.StatusUnprocessableEntity, msgConflicting
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
