package session

import "context"

// Record is the persistence-level shape of a session. Session data crosses
// the store boundary only in its encoded form; the codec in this package is
// the single place where encoding and decoding happen.
type Record struct {
	ID     string `json:"id"`
	UserID int64  `json:"user_id,omitempty"`
	Data   string `json:"data,omitempty"`
}

// Store is the pluggable persistence backend for sessions. Implementations
// own their concurrency safety; the core performs no locking and accepts
// last-writer-wins semantics for conflicting writes.
type Store interface {
	// Create persists a new record, assigning a unique ID when the given
	// record has none, and returns the stored record.
	Create(ctx context.Context, rec Record) (Record, error)

	// Get retrieves a record by ID. Returns ErrSessionNotFound when no
	// record exists for the ID.
	Get(ctx context.Context, id string) (Record, error)

	// Set replaces the encoded data of an existing record.
	Set(ctx context.Context, id string, data string) error

	// Delete removes a record by ID. Deleting a missing record is not an
	// error; callers rely on repeated deletes being safe.
	Delete(ctx context.Context, id string) error

	// DeleteAllForUser removes every record owned by the given user.
	DeleteAllForUser(ctx context.Context, userID int64) error

	// GetAll enumerates all stored records.
	GetAll(ctx context.Context) ([]Record, error)
}
