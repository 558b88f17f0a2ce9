// Package history defines recorded conversions and their storage interface.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Lookup errors.
var (
	ErrNotFound    = errors.New("history entry not found")
	ErrAmbiguousID = errors.New("history id prefix matches several entries")
)

// Entry is one recorded conversion attempt.
type Entry struct {
	ID        string
	Input     string
	Output    string // empty when the conversion failed
	ErrorKind string // empty on success
	CreatedAt time.Time
}

// New creates an Entry with a fresh ID and timestamp.
// A non-empty errorKind marks the attempt as failed and drops output.
func New(input, output, errorKind string) *Entry {
	if errorKind != "" {
		output = ""
	}
	return &Entry{
		ID:        uuid.NewString(),
		Input:     input,
		Output:    output,
		ErrorKind: errorKind,
		CreatedAt: time.Now(),
	}
}

// Succeeded returns true if the conversion produced output.
func (e *Entry) Succeeded() bool {
	return e.ErrorKind == ""
}

// ListOptions filters List results.
type ListOptions struct {
	Limit int       // 0 means no limit
	Since time.Time // zero means no lower bound
}

// Repository defines the storage interface for conversion history.
type Repository interface {
	// Record stores an entry.
	Record(ctx context.Context, e *Entry) error

	// Get retrieves an entry by ID or unique ID prefix.
	// Returns ErrNotFound if missing, ErrAmbiguousID if the prefix is not unique.
	Get(ctx context.Context, id string) (*Entry, error)

	// List returns entries newest first.
	List(ctx context.Context, opts ListOptions) ([]*Entry, error)

	// Clear deletes all entries and returns how many were removed.
	Clear(ctx context.Context) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
