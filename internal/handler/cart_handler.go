package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"shopfront/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartItemRequest is the body for adding or updating a cart line.
type cartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Create handles POST /api/carts requests.
func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	snap := h.service.Create(r.Context())

	h.logger.Info().Str("cart_id", snap.ID.String()).Msg("cart created")
	writeJSON(w, http.StatusCreated, snap)
}

// Route dispatches /api/carts/{id} and /api/carts/{id}/items[/...]
// requests to the matching operation.
func (h *CartHandler) Route(w http.ResponseWriter, r *http.Request) {
	// Expecting paths:
	//   /api/carts/{id}
	//   /api/carts/{id}/items
	//   /api/carts/{id}/items/{productID}
	rest := strings.TrimPrefix(r.URL.Path, "/api/carts/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")

	if parts[0] == "" {
		writeError(w, http.StatusBadRequest, "cart ID is required", h.logger)
		return
	}

	cartID, err := uuid.Parse(parts[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart ID format", h.logger)
		return
	}

	switch {
	case len(parts) == 1:
		h.get(w, r, cartID)
	case len(parts) == 2 && parts[1] == "items":
		h.addItem(w, r, cartID)
	case len(parts) == 3 && parts[1] == "items":
		h.updateOrRemoveItem(w, r, cartID, parts[2])
	default:
		writeError(w, http.StatusNotFound, "not found", h.logger)
	}
}

// get handles GET /api/carts/{id} requests.
func (h *CartHandler) get(w http.ResponseWriter, r *http.Request, cartID uuid.UUID) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	snap, err := h.service.Get(r.Context(), cartID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// addItem handles POST /api/carts/{id}/items requests.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, cartID uuid.UUID) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	snap, err := h.service.AddItem(r.Context(), cartID, req.ProductID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// updateOrRemoveItem handles PUT and DELETE requests on
// /api/carts/{id}/items/{productID}.
func (h *CartHandler) updateOrRemoveItem(w http.ResponseWriter, r *http.Request, cartID uuid.UUID, productID string) {
	switch r.Method {
	case http.MethodPut:
		var req cartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
			return
		}

		snap, err := h.service.UpdateItem(r.Context(), cartID, productID, req.Quantity)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, snap)

	case http.MethodDelete:
		snap, err := h.service.RemoveItem(r.Context(), cartID, productID)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, snap)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}
