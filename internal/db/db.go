// Package db provides PostgreSQL access for users, profiles, resumes and
// applications. Query methods return (nil, nil) for rows that do not exist;
// callers decide which absences are errors.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Migrate creates the schema if it does not exist. The compound unique index
// on applications(user_id, job_id) makes duplicate applies fail at the storage
// layer, so concurrent requests cannot double-insert.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			email         text NOT NULL UNIQUE,
			name          text NOT NULL,
			password_hash text NOT NULL,
			created_at    timestamptz NOT NULL DEFAULT now(),
			updated_at    timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id         uuid PRIMARY KEY REFERENCES users(id),
			name            text NOT NULL,
			email           text NOT NULL,
			phone           text NOT NULL DEFAULT '',
			location        text NOT NULL DEFAULT '',
			summary         text NOT NULL DEFAULT '',
			education       jsonb NOT NULL DEFAULT '[]',
			skills          jsonb NOT NULL DEFAULT '[]',
			projects        jsonb NOT NULL DEFAULT '[]',
			experience      jsonb NOT NULL DEFAULT '[]',
			preferred_roles jsonb NOT NULL DEFAULT '[]',
			updated_at      timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS resumes (
			id              uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id         uuid NOT NULL REFERENCES users(id),
			job_title       text NOT NULL,
			job_description text NOT NULL,
			content         text NOT NULL,
			keywords        jsonb NOT NULL DEFAULT '[]',
			created_at      timestamptz NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id           uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id      uuid NOT NULL REFERENCES users(id),
			job_id       text NOT NULL,
			job_title    text NOT NULL,
			company      text NOT NULL,
			status       text NOT NULL,
			resume_id    uuid NOT NULL REFERENCES resumes(id),
			cover_letter text NOT NULL,
			applied_at   timestamptz NOT NULL DEFAULT now(),
			updated_at   timestamptz NOT NULL DEFAULT now(),
			UNIQUE (user_id, job_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
