package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the search filter on ticket listings, matching against
// title and description.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tickets_text_gin
		ON tickets USING gin(to_tsvector('english', title || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create ticket text GIN index: %w", err)
	}

	return nil
}

// CreatePartialIndexes creates PostgreSQL partial indexes that Ent/Atlas
// cannot express. The ready-pool index covers exactly the rows the
// scheduler's reserve query scans: ready tickets with no VM bound.
func CreatePartialIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS ticket_ready_pool
		ON tickets (created_at)
		WHERE state = 'ready' AND vm_id IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create ready-pool index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS ticket_expired_leases
		ON tickets (lease_expires)
		WHERE lease_expires IS NOT NULL AND state IN ('assigned', 'in_progress', 'verifying')`)
	if err != nil {
		return fmt.Errorf("failed to create expired-leases index: %w", err)
	}

	return nil
}
