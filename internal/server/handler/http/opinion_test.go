package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mzaleska/catalog/internal/apperrors"
	"github.com/mzaleska/catalog/internal/models"
	"go.uber.org/zap"
)

// fakeOpinionService implements OpinionService for testing.
type fakeOpinionService struct {
	opinions []models.Opinion
	opinion  *models.Opinion
	average  float64
	err      error
}

func (f *fakeOpinionService) List(ctx context.Context) ([]models.Opinion, error) {
	return f.opinions, f.err
}
func (f *fakeOpinionService) ListByItem(ctx context.Context, itemID string) ([]models.Opinion, float64, error) {
	return f.opinions, f.average, f.err
}
func (f *fakeOpinionService) Average(ctx context.Context, itemID string) (float64, error) {
	return f.average, f.err
}
func (f *fakeOpinionService) Create(ctx context.Context, in models.OpinionInput) (*models.Opinion, error) {
	return f.opinion, f.err
}
func (f *fakeOpinionService) Delete(ctx context.Context, id string) (*models.Opinion, error) {
	return f.opinion, f.err
}

func TestOpinionHandler_GetAll(t *testing.T) {
	tests := []struct {
		name         string
		service      *fakeOpinionService
		expectedCode int
	}{
		{
			name:         "one opinion",
			service:      &fakeOpinionService{opinions: []models.Opinion{{ID: "op-1", RatingValue: 5}}},
			expectedCode: http.StatusOK,
		},
		{
			name:         "empty collection",
			service:      &fakeOpinionService{err: apperrors.NotFound("No opinions found for this item.")},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &OpinionHandler{Service: tt.service, Log: zap.NewNop()}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/opinions", nil)
			h.GetAll(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}

func TestOpinionHandler_GetByItem(t *testing.T) {
	h := &OpinionHandler{
		Service: &fakeOpinionService{
			opinions: []models.Opinion{{ID: "op-1", RatingValue: 4}, {ID: "op-2", RatingValue: 5}},
			average:  4.5,
		},
		Log: zap.NewNop(),
	}
	rec := serveWithParam(h.GetByItem, "GET", "/opinions/{id}", "/opinions/item-1", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var payload struct {
		Opinions      []models.Opinion `json:"opinions"`
		AverageRating float64          `json:"averageRating"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(payload.Opinions) != 2 {
		t.Errorf("expected 2 opinions, got %d", len(payload.Opinions))
	}
	if payload.AverageRating != 4.5 {
		t.Errorf("expected averageRating 4.5, got %v", payload.AverageRating)
	}
}

func TestOpinionHandler_Average(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		service      *fakeOpinionService
		expectedCode int
	}{
		{
			name:         "has opinions",
			url:          "/opinions/average?itemId=item-1",
			service:      &fakeOpinionService{average: 3.5},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing query param",
			url:          "/opinions/average",
			service:      &fakeOpinionService{err: apperrors.Validation("No ID given")},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no opinions",
			url:          "/opinions/average?itemId=item-1",
			service:      &fakeOpinionService{err: apperrors.NotFound("No opinions found for the given itemId")},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &OpinionHandler{Service: tt.service, Log: zap.NewNop()}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tt.url, nil)
			h.Average(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if tt.expectedCode == http.StatusOK {
				var payload struct {
					Average float64 `json:"average"`
				}
				if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
					t.Fatalf("failed to decode JSON: %v", err)
				}
				if payload.Average != 3.5 {
					t.Errorf("expected average 3.5, got %v", payload.Average)
				}
			}
		})
	}
}

func TestOpinionHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		service        *fakeOpinionService
		expectedCode   int
		expectedSubstr string
	}{
		{
			name:           "invalid JSON",
			body:           `{`,
			service:        &fakeOpinionService{},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Invalid request body",
		},
		{
			name:           "rating out of range",
			body:           `{"itemId":"item-1","ratingValue":9}`,
			service:        &fakeOpinionService{err: apperrors.Validation("Rating value must be an integer between 1 and 5")},
			expectedCode:   http.StatusBadRequest,
			expectedSubstr: "Rating value must be an integer between 1 and 5",
		},
		{
			name:           "missing item",
			body:           `{"itemId":"item-1","ratingValue":4}`,
			service:        &fakeOpinionService{err: apperrors.NotFound("Item not found")},
			expectedCode:   http.StatusNotFound,
			expectedSubstr: "Item not found",
		},
		{
			name:           "created",
			body:           `{"itemId":"item-1","ratingValue":4}`,
			service:        &fakeOpinionService{opinion: &models.Opinion{ID: "op-1", RatingValue: 4}},
			expectedCode:   http.StatusCreated,
			expectedSubstr: `"op-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &OpinionHandler{Service: tt.service, Log: zap.NewNop()}
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/opinions", bytes.NewBufferString(tt.body))
			h.Create(rec, req)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
			if !bytes.Contains(rec.Body.Bytes(), []byte(tt.expectedSubstr)) {
				t.Errorf("expected body to contain %q, got %q", tt.expectedSubstr, rec.Body.String())
			}
		})
	}
}

func TestOpinionHandler_Delete(t *testing.T) {
	tests := []struct {
		name         string
		service      *fakeOpinionService
		expectedCode int
	}{
		{
			name:         "deleted",
			service:      &fakeOpinionService{opinion: &models.Opinion{ID: "op-1"}},
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed id",
			service:      &fakeOpinionService{err: apperrors.NotFound("Invalid opinion ID")},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "missing",
			service:      &fakeOpinionService{err: apperrors.NotFound("Opinion not found")},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &OpinionHandler{Service: tt.service, Log: zap.NewNop()}
			rec := serveWithParam(h.Delete, "DELETE", "/opinions/{id}", "/opinions/op-1", nil)

			if rec.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, rec.Code)
			}
		})
	}
}
