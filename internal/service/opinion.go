package service

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/mzaleska/catalog/internal/apperrors"
	"github.com/mzaleska/catalog/internal/models"
	"github.com/mzaleska/catalog/internal/validation"
)

// OpinionRepository defines the persistence operations required by the
// opinion service.
type OpinionRepository interface {
	List(ctx context.Context) ([]models.Opinion, error)
	ListByItem(ctx context.Context, itemID string) ([]models.Opinion, error)
	AverageForItem(ctx context.Context, itemID string) (float64, int64, error)
	Create(ctx context.Context, op *models.Opinion) error
	Delete(ctx context.Context, id string) (*models.Opinion, error)
}

// ItemChecker verifies that a referenced item exists. The item accessor
// satisfies this.
type ItemChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// OpinionService implements opinion operations: validated creation with
// a one-time referential check against items, listing, aggregation, and
// deletion.
type OpinionService struct {
	repo  OpinionRepository
	items ItemChecker
}

// NewOpinionService constructs an OpinionService using the provided
// repository and item checker.
func NewOpinionService(repo OpinionRepository, items ItemChecker) *OpinionService {
	return &OpinionService{repo: repo, items: items}
}

// List returns all opinions. An empty collection is a client-visible
// validation condition, mirroring the item list.
func (s *OpinionService) List(ctx context.Context) ([]models.Opinion, error) {
	opinions, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(opinions) == 0 {
		return nil, apperrors.Validation("The list of opinions is empty")
	}
	return opinions, nil
}

// ListByItem returns the opinions for one item along with their live
// average rating. No opinions is reported as not-found.
func (s *OpinionService) ListByItem(ctx context.Context, itemID string) ([]models.Opinion, float64, error) {
	if !validation.ValidID(itemID) {
		return nil, 0, apperrors.NotFound("No opinions found for this item.")
	}
	opinions, err := s.repo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, 0, err
	}
	if len(opinions) == 0 {
		return nil, 0, apperrors.NotFound("No opinions found for this item.")
	}
	average, _, err := s.repo.AverageForItem(ctx, itemID)
	if err != nil {
		return nil, 0, err
	}
	return opinions, average, nil
}

// Average returns the mean rating of the opinions for one item.
func (s *OpinionService) Average(ctx context.Context, itemID string) (float64, error) {
	if itemID == "" {
		return 0, apperrors.Validation("No ID given")
	}
	if !validation.ValidID(itemID) {
		return 0, apperrors.Validation("Faulty ID given")
	}
	average, count, err := s.repo.AverageForItem(ctx, itemID)
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, apperrors.NotFound("No opinions found for the given itemId")
	}
	return average, nil
}

// Create validates and persists a new opinion. The referenced item must
// exist at creation time; the check is not re-enforced later, so an
// item deletion may leave orphaned opinions behind.
func (s *OpinionService) Create(ctx context.Context, in models.OpinionInput) (*models.Opinion, error) {
	if in.ItemID == "" || in.AuthorName == "" || in.AuthorSurname == "" || in.OpinionText == "" {
		return nil, apperrors.Validation("All fields are required")
	}

	if strings.TrimSpace(in.AuthorName) == "" || strings.TrimSpace(in.AuthorSurname) == "" ||
		strings.TrimSpace(in.OpinionText) == "" {
		return nil, apperrors.Validation("Fields cannot be empty")
	}

	if in.RatingValue == nil || *in.RatingValue != math.Trunc(*in.RatingValue) ||
		*in.RatingValue < 1 || *in.RatingValue > 5 {
		return nil, apperrors.Validation("Rating value must be an integer between 1 and 5")
	}

	if !validation.ValidID(in.ItemID) {
		return nil, apperrors.NotFound("Item not found")
	}
	exists, err := s.items.Exists(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound("Item not found")
	}

	op := &models.Opinion{
		ID:            uuid.NewString(),
		ItemID:        in.ItemID,
		AuthorName:    in.AuthorName,
		AuthorSurname: in.AuthorSurname,
		OpinionText:   in.OpinionText,
		RatingValue:   int(*in.RatingValue),
	}
	if err := s.repo.Create(ctx, op); err != nil {
		return nil, err
	}
	return op, nil
}

// Delete removes an opinion by id and returns the deleted record. A
// malformed identifier is reported the same way as a missing opinion.
func (s *OpinionService) Delete(ctx context.Context, id string) (*models.Opinion, error) {
	if !validation.ValidID(id) {
		return nil, apperrors.NotFound("Invalid opinion ID")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NotFound("Opinion not found")
	}
	return deleted, nil
}
