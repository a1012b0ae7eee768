package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gobank/pkg/validate"
)

type Response struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if code == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Message: message})
}

// RespondWithFieldErrors reports per-field validation failures.
func RespondWithFieldErrors(w http.ResponseWriter, code int, message string, fields map[string]string) {
	RespondWithJSON(w, code, Response{Message: message, Errors: fields})
}

// RespondWithValidationError reports validate.Errors per field and anything else as a bad request.
func RespondWithValidationError(w http.ResponseWriter, err error) {
	var fields validate.Errors
	if errors.As(err, &fields) {
		RespondWithFieldErrors(w, http.StatusBadRequest, "Validation failed", fields)
		return
	}
	RespondWithError(w, http.StatusBadRequest, "Invalid request body")
}
