// Package repository provides persistence implementations for the
// catalog accessors against a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mzaleska/catalog/internal/models"
)

// PostgresItemRepository implements item CRUD and rating aggregation
// against a PostgreSQL database.
type PostgresItemRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresItemRepository creates a new PostgresItemRepository with the
// given database connection.
func NewPostgresItemRepository(db *sql.DB) *PostgresItemRepository {
	return &PostgresItemRepository{DB: db}
}

// scanItem reads one row of item columns and derives the cached mean
// rating from the denormalized counters.
func scanItem(row interface{ Scan(dest ...any) error }, item *models.Item) error {
	if err := row.Scan(
		&item.ID, &item.Name, &item.Category, &item.Photo, &item.Price,
		&item.Description, &item.Quantity, &item.Shipping1, &item.Shipping2,
		&item.RatingCount, &item.RatingSum, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return err
	}
	if item.RatingCount > 0 {
		item.Rating = item.RatingSum / float64(item.RatingCount)
	}
	return nil
}

// List fetches all items ordered by creation time.
func (r *PostgresItemRepository) List(ctx context.Context) ([]models.Item, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, category, photo, price, description, quantity, shipping1, shipping2, rating_count, rating_sum, created_at, updated_at FROM items ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := scanItem(rows, &item); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetByID fetches a single item. It returns (nil, nil) when no item
// with the given id exists.
func (r *PostgresItemRepository) GetByID(ctx context.Context, id string) (*models.Item, error) {
	var item models.Item
	err := scanItem(r.DB.QueryRowContext(ctx, `
		SELECT id, name, category, photo, price, description, quantity, shipping1, shipping2, rating_count, rating_sum, created_at, updated_at FROM items WHERE id = $1
	`, id), &item)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// Exists checks whether an item with the given id exists.
func (r *PostgresItemRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM items WHERE id = $1)`,
		id,
	).Scan(&exists)
	return exists, err
}

// Create persists a new item and fills in its database-assigned
// timestamps.
func (r *PostgresItemRepository) Create(ctx context.Context, item *models.Item) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO items (id, name, category, photo, price, description, quantity, shipping1, shipping2) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING created_at, updated_at
	`, item.ID, item.Name, item.Category, item.Photo, item.Price,
		item.Description, item.Quantity, item.Shipping1, item.Shipping2,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// Update replaces the editable fields of an item and returns the
// post-update record. It returns (nil, nil) when no item matched.
func (r *PostgresItemRepository) Update(ctx context.Context, id string, item *models.Item) (*models.Item, error) {
	var updated models.Item
	err := scanItem(r.DB.QueryRowContext(ctx, `
		UPDATE items SET name = $2, category = $3, photo = $4, price = $5, description = $6, quantity = $7, shipping1 = $8, shipping2 = $9, updated_at = now() WHERE id = $1 RETURNING id, name, category, photo, price, description, quantity, shipping1, shipping2, rating_count, rating_sum, created_at, updated_at
	`, id, item.Name, item.Category, item.Photo, item.Price,
		item.Description, item.Quantity, item.Shipping1, item.Shipping2,
	), &updated)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return &updated, nil
}

// Delete removes an item and returns the deleted record, or (nil, nil)
// when nothing was deleted.
func (r *PostgresItemRepository) Delete(ctx context.Context, id string) (*models.Item, error) {
	var deleted models.Item
	err := scanItem(r.DB.QueryRowContext(ctx, `
		DELETE FROM items WHERE id = $1 RETURNING id, name, category, photo, price, description, quantity, shipping1, shipping2, rating_count, rating_sum, created_at, updated_at
	`, id), &deleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete item: %w", err)
	}
	return &deleted, nil
}

// ListWithAverageRating fetches all items with the live mean of their
// opinion ratings, computed by the database. Items without opinions
// report an average of 0.
func (r *PostgresItemRepository) ListWithAverageRating(ctx context.Context) ([]models.RatedItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT i.id, i.name, i.category, i.photo, i.price, i.description, i.quantity, i.shipping1, i.shipping2, i.rating_count, i.rating_sum, i.created_at, i.updated_at, COALESCE(AVG(o.rating_value), 0) FROM items i LEFT JOIN opinions o ON o.item_id = i.id GROUP BY i.id ORDER BY i.created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list items with rating: %w", err)
	}
	defer rows.Close()

	var items []models.RatedItem
	for rows.Next() {
		var item models.RatedItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &item.Photo, &item.Price,
			&item.Description, &item.Quantity, &item.Shipping1, &item.Shipping2,
			&item.RatingCount, &item.RatingSum, &item.CreatedAt, &item.UpdatedAt,
			&item.AverageRating,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		if item.RatingCount > 0 {
			item.Rating = item.RatingSum / float64(item.RatingCount)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetWithAverageRating fetches one item with the live mean of its
// opinion ratings, or (nil, nil) when the item does not exist.
func (r *PostgresItemRepository) GetWithAverageRating(ctx context.Context, id string) (*models.RatedItem, error) {
	var item models.RatedItem
	err := r.DB.QueryRowContext(ctx, `
		SELECT i.id, i.name, i.category, i.photo, i.price, i.description, i.quantity, i.shipping1, i.shipping2, i.rating_count, i.rating_sum, i.created_at, i.updated_at, COALESCE(AVG(o.rating_value), 0) FROM items i LEFT JOIN opinions o ON o.item_id = i.id WHERE i.id = $1 GROUP BY i.id
	`, id).Scan(
		&item.ID, &item.Name, &item.Category, &item.Photo, &item.Price,
		&item.Description, &item.Quantity, &item.Shipping1, &item.Shipping2,
		&item.RatingCount, &item.RatingSum, &item.CreatedAt, &item.UpdatedAt,
		&item.AverageRating,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item with rating: %w", err)
	}
	if item.RatingCount > 0 {
		item.Rating = item.RatingSum / float64(item.RatingCount)
	}
	return &item, nil
}
