package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Opinions carry no foreign key to items: referential integrity is
// checked once at creation time, and opinions orphaned by a later item
// deletion are tolerated.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    surname TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    admin BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS items (
    id UUID PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    photo TEXT NOT NULL,
    price DOUBLE PRECISION NOT NULL,
    description TEXT NOT NULL,
    quantity BIGINT NOT NULL,
    shipping1 BOOLEAN NOT NULL,
    shipping2 BOOLEAN NOT NULL,
    rating_count BIGINT NOT NULL DEFAULT 0,
    rating_sum DOUBLE PRECISION NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS opinions (
    id UUID PRIMARY KEY,
    item_id UUID NOT NULL,
    author_name TEXT NOT NULL,
    author_surname TEXT NOT NULL,
    opinion_text TEXT NOT NULL,
    rating_value INT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS opinions_item_id_idx ON opinions (item_id);
`

func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
