package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mzaleska/catalog/internal/models"
)

// ErrDuplicateEmail is returned by Create when the email is already
// registered. The unique index on users.email is the authority; the
// service-level existence check only gives a friendlier fast path.
var ErrDuplicateEmail = errors.New("email already in use")

// uniqueViolation is the PostgreSQL error code for unique-index conflicts.
const uniqueViolation = "23505"

// PostgresUserRepository implements account persistence against a
// PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository using
// the provided *sql.DB.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// Create persists a new account. Returns ErrDuplicateEmail when the
// email is already taken.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, surname, email, password_hash, admin) VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Name, user.Surname, user.Email, user.PasswordHash, user.Admin)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// GetByEmail fetches an account by email, or (nil, nil) when no such
// account exists.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, surname, email, password_hash, admin FROM users WHERE email = $1
	`, email).Scan(&user.ID, &user.Name, &user.Surname, &user.Email, &user.PasswordHash, &user.Admin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}
