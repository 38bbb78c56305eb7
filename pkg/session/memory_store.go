package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implements Store using in-memory storage. It is safe for
// concurrent use and intended for tests and single-process deployments.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates a new in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]Record),
	}
}

// Create stores a new record, assigning a fresh ID when none is set
func (m *MemoryStore) Create(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[rec.ID] = rec
	return rec, nil
}

// Get retrieves a record by ID
func (m *MemoryStore) Get(ctx context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[id]
	if !exists {
		return Record{}, ErrSessionNotFound
	}
	return rec, nil
}

// Set replaces the encoded data of an existing record
func (m *MemoryStore) Set(ctx context.Context, id string, data string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.records[id]
	if !exists {
		return ErrSessionNotFound
	}

	rec.Data = data
	m.records[id] = rec
	return nil
}

// Delete removes a record by ID; deleting a missing record is a no-op
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, id)
	return nil
}

// DeleteAllForUser removes every record owned by the given user
func (m *MemoryStore) DeleteAllForUser(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, rec := range m.records {
		if rec.UserID == userID {
			delete(m.records, id)
		}
	}
	return nil
}

// GetAll enumerates all stored records
func (m *MemoryStore) GetAll(ctx context.Context) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	recs := make([]Record, 0, len(m.records))
	for _, rec := range m.records {
		recs = append(recs, rec)
	}
	return recs, nil
}
