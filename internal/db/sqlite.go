// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/berlinclock/internal/history"
)

// timeLayout sorts lexically in chronological order for UTC values.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite implements history.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ history.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path if needed and opens the repository.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

// Record stores a conversion entry.
func (s *SQLite) Record(ctx context.Context, e *history.Entry) error {
	query := `
		INSERT INTO conversions (id, input, output, error_kind, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Input,
		e.Output,
		e.ErrorKind,
		e.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting conversion: %w", err)
	}
	return nil
}

// Get retrieves an entry by ID or unique ID prefix.
func (s *SQLite) Get(ctx context.Context, id string) (*history.Entry, error) {
	if id == "" {
		return nil, history.ErrNotFound
	}

	query := `
		SELECT id, input, output, error_kind, created_at
		FROM conversions
		WHERE id LIKE ? ESCAPE '\'
		LIMIT 2
	`

	rows, err := s.db.QueryContext(ctx, query, escapeLike(id)+"%")
	if err != nil {
		return nil, fmt.Errorf("querying conversion: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []*history.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		matches = append(matches, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversions: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, history.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		for _, e := range matches {
			if e.ID == id {
				return e, nil
			}
		}
		return nil, history.ErrAmbiguousID
	}
}

// List returns entries newest first, filtered by opts.
func (s *SQLite) List(ctx context.Context, opts history.ListOptions) ([]*history.Entry, error) {
	query := `
		SELECT id, input, output, error_kind, created_at
		FROM conversions
		WHERE created_at >= ?
		ORDER BY created_at DESC, rowid DESC
	`
	args := []any{opts.Since.UTC().Format(timeLayout)}
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying conversions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*history.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning conversion: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating conversions: %w", err)
	}
	return entries, nil
}

// Clear deletes all entries.
func (s *SQLite) Clear(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM conversions")
	if err != nil {
		return 0, fmt.Errorf("deleting conversions: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// escapeLike escapes LIKE wildcards in s.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*history.Entry, error) {
	var (
		e         history.Entry
		createdAt string
	)
	if err := row.Scan(&e.ID, &e.Input, &e.Output, &e.ErrorKind, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	e.CreatedAt = t
	return &e, nil
}
