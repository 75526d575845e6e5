// Package service provides business logic for the catalog accessors,
// delegating persistence to repository interfaces.
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

// ItemRepository defines the persistence operations required by the
// item service.
type ItemRepository interface {
	List(ctx context.Context) ([]models.Item, error)
	GetByID(ctx context.Context, id string) (*models.Item, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, id string, item *models.Item) (*models.Item, error)
	Delete(ctx context.Context, id string) (*models.Item, error)
	ListWithAverageRating(ctx context.Context) ([]models.RatedItem, error)
	GetWithAverageRating(ctx context.Context, id string) (*models.RatedItem, error)
}

// ImageProber checks whether a URL serves image content.
type ImageProber interface {
	IsImage(ctx context.Context, url string) bool
}

// ItemService implements catalog item operations: CRUD with field
// validation plus the average-rating reads.
type ItemService struct {
	repo   ItemRepository
	prober ImageProber
}

// NewItemService constructs an ItemService using the provided
// repository and image prober.
func NewItemService(repo ItemRepository, prober ImageProber) *ItemService {
	return &ItemService{repo: repo, prober: prober}
}

// validateInput applies the item field rules and returns the validated
// record (without an ID). The photo must be a well-formed URL whose
// content probe confirms an image; the probe fails closed.
func (s *ItemService) validateInput(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	if in.Name == "" || in.Category == "" || in.Photo == "" || in.Description == "" ||
		in.Price == nil || in.Quantity == nil || in.Shipping1 == nil ||
		in.Shipping2 == nil || !*in.Shipping2 {
		return nil, apperrors.Validation("Missing required fields")
	}

	if !validation.ValidURL(in.Photo) || !s.prober.IsImage(ctx, in.Photo) {
		return nil, apperrors.Validation("Given url is not photo url")
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.Photo) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, apperrors.Validation("Fields cannot be just spaces")
	}

	if *in.Price <= 0 || *in.Quantity < 0 || *in.Quantity >= math.MaxInt64 ||
		*in.Quantity != math.Trunc(*in.Quantity) {
		return nil, apperrors.Validation("Invalid quantity or price")
	}

	return &models.Item{
		Name:        in.Name,
		Category:    in.Category,
		Photo:       in.Photo,
		Price:       *in.Price,
		Description: in.Description,
		Quantity:    int64(*in.Quantity),
		Shipping1:   *in.Shipping1,
		Shipping2:   *in.Shipping2,
	}, nil
}

// List returns all items. An empty catalog is reported as a
// client-visible validation condition rather than an empty success.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.Validation("The list of items is empty")
	}
	return items, nil
}

// Get returns one item. A malformed identifier is reported the same way
// as a missing item.
func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	if !validation.ValidID(id) {
		return nil, apperrors.NotFound("No such item")
	}
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("No such item")
	}
	return item, nil
}

// Create validates and persists a new item.
func (s *ItemService) Create(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	item, err := s.validateInput(ctx, in)
	if err != nil {
		return nil, err
	}
	item.ID = uuid.NewString()
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update validates the fields and replaces an existing item, returning
// the post-update record.
func (s *ItemService) Update(ctx context.Context, id string, in models.ItemInput) (*models.Item, error) {
	if !validation.ValidID(id) {
		return nil, apperrors.NotFound("Item not found")
	}
	item, err := s.validateInput(ctx, in)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, id, item)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.NotFound("Item not found")
	}
	return updated, nil
}

// Delete removes an item and returns the deleted record. A second
// delete of the same id reports not-found.
func (s *ItemService) Delete(ctx context.Context, id string) (*models.Item, error) {
	if !validation.ValidID(id) {
		return nil, apperrors.NotFound("No such item")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apperrors.NotFound("No such item")
	}
	return deleted, nil
}

// ListWithAverageRating returns all items with the live mean of their
// opinion ratings. An empty catalog yields an empty list here.
func (s *ItemService) ListWithAverageRating(ctx context.Context) ([]models.RatedItem, error) {
	return s.repo.ListWithAverageRating(ctx)
}

// GetWithAverageRating returns one item with the live mean of its
// opinion ratings. Unlike Get, a malformed identifier is its own
// validation condition here.
func (s *ItemService) GetWithAverageRating(ctx context.Context, id string) (*models.RatedItem, error) {
	if !validation.ValidID(id) {
		return nil, apperrors.Validation("Invalid item ID")
	}
	item, err := s.repo.GetWithAverageRating(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NotFound("Item not found")
	}
	return item, nil
}
