package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mzaleska/catalog/internal/apperrors"
	"github.com/mzaleska/catalog/internal/models"
	"go.uber.org/zap"
)

// ItemService defines the item operations required by the HTTP handlers.
type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id string) (*models.Item, error)
	Create(ctx context.Context, in models.ItemInput) (*models.Item, error)
	Update(ctx context.Context, id string, in models.ItemInput) (*models.Item, error)
	Delete(ctx context.Context, id string) (*models.Item, error)
	ListWithAverageRating(ctx context.Context) ([]models.RatedItem, error)
	GetWithAverageRating(ctx context.Context, id string) (*models.RatedItem, error)
}

// ItemHandler handles HTTP requests for catalog items.
type ItemHandler struct {
	Service ItemService
	Log     *zap.Logger
}

// GetAll handles GET /items/all. An empty catalog reports 400.
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Get handles GET /items/byId/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Add handles POST /items/add.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	var in models.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, h.Log, apperrors.Validation("Invalid request body"), "message")
		return
	}

	item, err := h.Service.Create(r.Context(), in)
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Item added successfully",
		"item":    item,
	})
}

// Edit handles PUT /items/edit/{id}.
func (h *ItemHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var in models.ItemInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, h.Log, apperrors.Validation("Invalid request body"), "message")
		return
	}

	item, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Item updated successfully",
		"item":    item,
	})
}

// Delete handles DELETE /items/delete/{id} and returns the deleted
// record.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// GetAllWithRating handles GET /items/all-items. Unlike GetAll, an
// empty catalog yields an empty list.
func (h *ItemHandler) GetAllWithRating(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListWithAverageRating(r.Context())
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	if items == nil {
		items = []models.RatedItem{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// GetWithRating handles GET /items/item/{id}.
func (h *ItemHandler) GetWithRating(w http.ResponseWriter, r *http.Request) {
	item, err := h.Service.GetWithAverageRating(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
