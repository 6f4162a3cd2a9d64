package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These serve the free-text constraint query path, which matches against
// name and description.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_constraint_records_text_gin
		ON constraint_records USING gin(to_tsvector('english', name || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create constraint text GIN index: %w", err)
	}

	return nil
}
