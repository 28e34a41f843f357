package repositories

import (
	"database/sql"
	"fmt"
)

// InitSchema creates the audit and training tables if they do not exist.
// It is safe to run on every startup.
func InitSchema(db *sql.DB) error {
	statements := []string{
		`
		CREATE TABLE IF NOT EXISTS queries (
			calculation_id TEXT PRIMARY KEY,
			logged_date    TEXT NOT NULL,
			logged_time    TEXT NOT NULL,
			phone          TEXT NOT NULL DEFAULT '',
			request        BYTEA NOT NULL,
			response       BYTEA NOT NULL
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS samples (
			calculation_id TEXT PRIMARY KEY REFERENCES queries (calculation_id),
			price_per_km   DOUBLE PRECISION NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL
		);
		`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}
