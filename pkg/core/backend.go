package core

import "context"

// Backend defines the contract for a byte-level store holding the board
// state under a single key.
// Adhering to this interface keeps persistence independent of the
// underlying mechanism (SQLite, bbolt, Redis, plain files).
type Backend interface {
	// Name identifies the backend in logs and results (e.g. "sqlite").
	Name() string

	// Read returns the stored payload, or ErrNotFound when nothing is stored.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored payload.
	Write(ctx context.Context, data []byte) error

	// Close releases the underlying resources.
	Close() error
}

// Watchable defines an interface for backends that can report external changes.
type Watchable interface {
	// Watch emits an event whenever the stored payload changes outside this process.
	Watch(ctx context.Context) (<-chan Event, error)
}
