package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopfront/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a domain error to an HTTP status and writes
// the standardised payload. Unknown errors become a 500 without
// leaking internals.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeCartNotFound, model.ErrCodeBusinessNotFound, model.ErrCodeProductNotFound:
			status = http.StatusNotFound
		case model.ErrCodeEmptyCart, model.ErrCodeInvalidQuantity:
			status = http.StatusBadRequest
		}
		logger.Debug().Str("code", domainErr.Code).Int("status", status).Msg("domain error")
		writeJSON(w, status, model.ErrorResponse{Error: domainErr.Message, Message: domainErr.Code})
		return
	}

	writeError(w, http.StatusInternalServerError, "internal server error", logger)
}
