package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS conversions (
			id          TEXT PRIMARY KEY,
			input       TEXT NOT NULL,
			output      TEXT NOT NULL DEFAULT '',
			error_kind  TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_conversions_created ON conversions(created_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating conversions table: %w", err)
	}

	return nil
}
