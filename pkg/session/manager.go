package session

import (
	"context"
	"log/slog"
	"time"
)

// Manager orchestrates session resolution and lifecycle operations against
// a pluggable Store. Its configuration is fixed at construction time.
type Manager struct {
	store  Store
	config Config
	log    *slog.Logger
}

// New creates a session manager. Configuration contract violations are
// reported here, once, rather than on every request: a store is mandatory,
// and enabling signed cookies without any key is an error.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		config: DefaultConfig(),
		log:    slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		return nil, ErrStoreRequired
	}
	if m.config.Signed && len(m.config.Keys) == 0 {
		return nil, ErrKeysRequired
	}
	if m.config.MaxAge <= 0 {
		m.config.MaxAge = DefaultConfig().MaxAge
	}

	return m, nil
}

// CreateArgs carries the initial state of a durable session.
type CreateArgs struct {
	UserID int64
	Data   map[string]any
}

// Create persists a new session. The initial data is encoded with a computed
// expiry (now + MaxAge) and handed to the store, which assigns the ID. The
// returned session carries StatusNeedsSave: the caller must emit the session
// cookie for it.
func (m *Manager) Create(ctx context.Context, args CreateArgs) (*Session, error) {
	maxAge := time.Now().Add(m.config.MaxAge).UnixMilli()

	encoded, err := encodeData(args.Data, maxAge)
	if err != nil {
		return nil, err
	}

	rec, err := m.store.Create(ctx, Record{UserID: args.UserID, Data: encoded})
	if err != nil {
		return nil, err
	}

	sess, err := m.sessionFromRecord(rec)
	if err != nil {
		return nil, err
	}

	sess.Status = StatusNeedsSave
	return sess, nil
}

// Set replaces the data of a persisted session. Temporary sessions are
// inert: calling Set on one (or on nil) is a no-op. The session's existing
// expiry is carried over into the new payload.
func (m *Manager) Set(ctx context.Context, sess *Session, data map[string]any) error {
	if sess == nil || sess.Temporary {
		return nil
	}

	maxAge, _ := sess.MaxAge()
	encoded, err := encodeData(data, maxAge)
	if err != nil {
		return err
	}

	return m.store.Set(ctx, sess.ID, encoded)
}

// Remove deletes a persisted session and marks it needs-deletion so the
// caller clears the cookie. Temporary and nil sessions are no-ops. Repeated
// calls simply repeat the store delete; the core adds no existence guard.
func (m *Manager) Remove(ctx context.Context, sess *Session) error {
	if sess == nil || sess.Temporary {
		return nil
	}

	sess.Status = StatusNeedsDeletion
	return m.store.Delete(ctx, sess.ID)
}

// RemoveAllForUser bulk-deletes every session owned by the given user.
// Guarded by session presence, non-temporary, and a non-zero user ID.
func (m *Manager) RemoveAllForUser(ctx context.Context, userID int64, sess *Session) error {
	if sess == nil || sess.Temporary || userID == 0 {
		return nil
	}

	return m.store.DeleteAllForUser(ctx, userID)
}

// Get fetches a session by ID and decodes its stored payload. Store errors,
// including ErrSessionNotFound, surface unchanged.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	rec, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return m.sessionFromRecord(rec)
}

// GetAll enumerates every stored session.
func (m *Manager) GetAll(ctx context.Context) ([]*Session, error) {
	recs, err := m.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sessions := make([]*Session, 0, len(recs))
	for _, rec := range recs {
		sess, err := m.sessionFromRecord(rec)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}

	return sessions, nil
}

// sessionFromRecord decodes a stored record into a session. Legacy records
// persisted without an encoded payload fall back to a degraded decode that
// surfaces the record's own fields as session data; such sessions carry no
// maxAge and therefore never expire.
func (m *Manager) sessionFromRecord(rec Record) (*Session, error) {
	data, err := decodeData(rec.Data)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		data = map[string]any{"id": rec.ID}
		if rec.UserID != 0 {
			data["user_id"] = rec.UserID
		}
	}

	return &Session{
		ID:     rec.ID,
		UserID: rec.UserID,
		Data:   data,
	}, nil
}
