package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mzaleska/catalog/internal/models"
)

// PostgresOpinionRepository implements opinion CRUD and per-item rating
// aggregation against a PostgreSQL database.
//
// Creation and deletion also maintain the denormalized rating counters
// on the parent item, inside the same transaction, using atomic SQL
// increments so concurrent writes cannot lose updates.
type PostgresOpinionRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresOpinionRepository creates a new PostgresOpinionRepository
// using the provided *sql.DB.
func NewPostgresOpinionRepository(db *sql.DB) *PostgresOpinionRepository {
	return &PostgresOpinionRepository{DB: db}
}

// List fetches all opinions ordered by creation time.
func (r *PostgresOpinionRepository) List(ctx context.Context) ([]models.Opinion, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, item_id, author_name, author_surname, opinion_text, rating_value, created_at FROM opinions ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("list opinions: %w", err)
	}
	defer rows.Close()

	var opinions []models.Opinion
	for rows.Next() {
		var op models.Opinion
		if err := rows.Scan(&op.ID, &op.ItemID, &op.AuthorName, &op.AuthorSurname,
			&op.OpinionText, &op.RatingValue, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		opinions = append(opinions, op)
	}
	return opinions, rows.Err()
}

// ListByItem fetches all opinions referencing the given item.
func (r *PostgresOpinionRepository) ListByItem(ctx context.Context, itemID string) ([]models.Opinion, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, item_id, author_name, author_surname, opinion_text, rating_value, created_at FROM opinions WHERE item_id = $1 ORDER BY created_at
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list opinions by item: %w", err)
	}
	defer rows.Close()

	var opinions []models.Opinion
	for rows.Next() {
		var op models.Opinion
		if err := rows.Scan(&op.ID, &op.ItemID, &op.AuthorName, &op.AuthorSurname,
			&op.OpinionText, &op.RatingValue, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		opinions = append(opinions, op)
	}
	return opinions, rows.Err()
}

// AverageForItem returns the mean rating of the opinions for an item
// and how many opinions there are. The mean is 0 when there are none.
func (r *PostgresOpinionRepository) AverageForItem(ctx context.Context, itemID string) (float64, int64, error) {
	var average float64
	var count int64
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(rating_value), 0), COUNT(*) FROM opinions WHERE item_id = $1
	`, itemID).Scan(&average, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("average for item: %w", err)
	}
	return average, count, nil
}

// Create persists a new opinion and atomically bumps the parent item's
// rating counters in the same transaction.
func (r *PostgresOpinionRepository) Create(ctx context.Context, op *models.Opinion) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO opinions (id, item_id, author_name, author_surname, opinion_text, rating_value) VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at
	`, op.ID, op.ItemID, op.AuthorName, op.AuthorSurname, op.OpinionText, op.RatingValue,
	).Scan(&op.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert opinion: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE items SET rating_count = rating_count + 1, rating_sum = rating_sum + $2, updated_at = now() WHERE id = $1
	`, op.ItemID, op.RatingValue)
	if err != nil {
		return fmt.Errorf("bump item rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete removes an opinion and atomically lowers the parent item's
// rating counters in the same transaction. The parent may already be
// gone, in which case only the opinion row is removed. Returns
// (nil, nil) when no opinion matched.
func (r *PostgresOpinionRepository) Delete(ctx context.Context, id string) (*models.Opinion, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var op models.Opinion
	err = tx.QueryRowContext(ctx, `
		DELETE FROM opinions WHERE id = $1 RETURNING id, item_id, author_name, author_surname, opinion_text, rating_value, created_at
	`, id).Scan(&op.ID, &op.ItemID, &op.AuthorName, &op.AuthorSurname,
		&op.OpinionText, &op.RatingValue, &op.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete opinion: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE items SET rating_count = GREATEST(rating_count - 1, 0), rating_sum = GREATEST(rating_sum - $2, 0), updated_at = now() WHERE id = $1
	`, op.ItemID, op.RatingValue)
	if err != nil {
		return nil, fmt.Errorf("lower item rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return &op, nil
}
