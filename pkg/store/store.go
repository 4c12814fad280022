// Package store provides persistent storage for named boards.
//
// This package defines the Store interface for board persistence, with
// implementations for different backends:
//   - file: JSON files in a config directory, for CLI usage
//   - mongo: MongoDB collection, for server deployments
//
// # Architecture
//
// Boards are stored as records keyed by a user-chosen name. A record wraps
// the board with bookkeeping timestamps so callers can show modification
// times without parsing the board itself. The Store interface supports:
//   - Get/Set/Delete operations by name
//   - Listing all stored records
//
// # Usage
//
// Create a store:
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.config/pinwall/boards/
//
//	// Server
//	st, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "pinwall")
//
// Manage boards:
//
//	rec, err := st.Get(ctx, "roadmap")
//	if err != nil {
//	    return err
//	}
//	if rec == nil {
//	    // Board not found
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/pinwall/pinwall/pkg/board"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a board does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidName is returned when a board name fails validation.
	ErrInvalidName = errors.New("invalid board name")
)

// Record wraps a stored board with bookkeeping metadata.
type Record struct {
	Name      string      `json:"name" bson:"_id"`
	Board     board.Board `json:"board" bson:"board"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for board storage backends.
type Store interface {
	// Get retrieves a board record by name.
	// Returns nil, nil if the board doesn't exist.
	Get(ctx context.Context, name string) (*Record, error)

	// Set stores a board record, replacing any existing record with the
	// same name. Implementations maintain CreatedAt and UpdatedAt.
	Set(ctx context.Context, rec *Record) error

	// Delete removes a board. Deleting a missing board is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all stored records, most recently updated first.
	List(ctx context.Context) ([]Record, error)

	// Close releases any resources held by the store.
	Close() error
}

// NewRecord creates a record for the given board with fresh timestamps.
func NewRecord(name string, b board.Board) *Record {
	now := time.Now().UTC()
	return &Record{
		Name:      name,
		Board:     b,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
