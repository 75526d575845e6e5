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

// OpinionService defines the opinion operations required by the HTTP
// handlers.
type OpinionService interface {
	List(ctx context.Context) ([]models.Opinion, error)
	ListByItem(ctx context.Context, itemID string) ([]models.Opinion, float64, error)
	Average(ctx context.Context, itemID string) (float64, error)
	Create(ctx context.Context, in models.OpinionInput) (*models.Opinion, error)
	Delete(ctx context.Context, id string) (*models.Opinion, error)
}

// OpinionHandler handles HTTP requests for item opinions.
type OpinionHandler struct {
	Service OpinionService
	Log     *zap.Logger
}

// GetAll handles GET /opinions. An empty collection reports 400.
func (h *OpinionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	opinions, err := h.Service.List(r.Context())
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"opinions": opinions})
}

// GetByItem handles GET /opinions/{id}, where id references an item.
// The response carries the opinions and their live average rating.
func (h *OpinionHandler) GetByItem(w http.ResponseWriter, r *http.Request) {
	opinions, average, err := h.Service.ListByItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"opinions":      opinions,
		"averageRating": average,
	})
}

// Average handles GET /opinions/average?itemId=.
func (h *OpinionHandler) Average(w http.ResponseWriter, r *http.Request) {
	average, err := h.Service.Average(r.Context(), r.URL.Query().Get("itemId"))
	if err != nil {
		respondError(w, h.Log, err, "message")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"average": average})
}

// Create handles POST /opinions.
func (h *OpinionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in models.OpinionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, h.Log, apperrors.Validation("Invalid request body"), "error")
		return
	}

	opinion, err := h.Service.Create(r.Context(), in)
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}
	writeJSON(w, http.StatusCreated, opinion)
}

// Delete handles DELETE /opinions/{id} and returns the deleted record.
func (h *OpinionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	opinion, err := h.Service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Log, err, "error")
		return
	}
	writeJSON(w, http.StatusOK, opinion)
}
