package handler

import (
	"errors"
	"net/http"

	"shopfront/internal/model"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
)

// BusinessHandler handles business-directory HTTP requests.
type BusinessHandler struct {
	service service.DirectoryService
	logger  zerolog.Logger
}

// NewBusinessHandler creates a new business handler.
func NewBusinessHandler(service service.DirectoryService, logger zerolog.Logger) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		logger:  logger.With().Str("handler", "business").Logger(),
	}
}

// List handles GET /api/businesses requests with an optional category
// filter. Each listing carries its open status evaluated at request
// time.
func (h *BusinessHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	category := r.URL.Query().Get("category")

	businesses := h.service.List(r.Context(), category)
	writeJSON(w, http.StatusOK, businesses)
}

// GetByID handles GET /api/businesses/{id} requests.
func (h *BusinessHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/businesses/{id}
	businessID := r.URL.Path[len("/api/businesses/"):]
	if businessID == "" {
		writeError(w, http.StatusBadRequest, "business ID is required", h.logger)
		return
	}

	business, err := h.service.Get(r.Context(), businessID)
	if err != nil {
		if errors.Is(err, model.ErrBusinessNotFound) {
			writeError(w, http.StatusNotFound, "business not found", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve business", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, business)
}
