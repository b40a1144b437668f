package db

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
)

//go:embed seeds/announcements.sql
var seedAnnouncementsSQL string

// schema is applied in order; every statement must succeed.
var schema = []string{
	`
CREATE TABLE IF NOT EXISTS announcements (
    id          BIGSERIAL PRIMARY KEY,
    account_id  BIGINT NOT NULL,
    title       VARCHAR(100) NOT NULL CHECK (char_length(title) >= 6),
    contents    TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE INDEX IF NOT EXISTS idx_announcements_account_id ON announcements(account_id)`,
}

// optionalSchema speeds up title LIKE '%kw%' lookups when pg_trgm is available.
// Failures are logged and ignored (missing extension or no superuser rights).
var optionalSchema = []string{
	`CREATE EXTENSION IF NOT EXISTS pg_trgm`,
	`CREATE INDEX IF NOT EXISTS idx_announcements_title_trgm ON announcements USING gin(title gin_trgm_ops)`,
}

// MigrateUp creates the announcements schema. It is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("MigrateUp: %w", err)
		}
	}
	for _, stmt := range optionalSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			slog.Warn("optional migration skipped", slog.Any("error", err))
		}
	}
	return nil
}

// Seed inserts the starter announcements into an empty table.
func Seed(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, seedAnnouncementsSQL); err != nil {
		return fmt.Errorf("Seed: %w", err)
	}
	return nil
}

// MigrateDown drops the announcements schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_announcements_title_trgm`,
		`DROP INDEX IF EXISTS idx_announcements_account_id`,
		`DROP TABLE IF EXISTS announcements`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("MigrateDown: %w", err)
		}
	}
	return nil
}
