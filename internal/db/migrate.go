package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations is the ordered list of schema statements. Statements must be
// idempotent since the list is re-run on every open.
var migrations = []string{
	// The two persisted document roots mirror the engine's split: one
	// long-lived preferences document, one quarter-scoped plan document.
	// Both are stored by value as JSON; the engine never updates them
	// piecemeal.
	`CREATE TABLE IF NOT EXISTS preferences (
		id         TEXT PRIMARY KEY CHECK (id = 'default'),
		document   TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS plan (
		id          TEXT PRIMARY KEY CHECK (id = 'current'),
		quarter     TEXT NOT NULL,
		document    TEXT NOT NULL,
		modified_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
