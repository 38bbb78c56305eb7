package session

import (
	"time"

	"github.com/google/uuid"
)

// Status tells the calling request layer what outbound action a session
// requires: none, set a persisted-session cookie, or clear the cookie.
type Status string

const (
	// StatusNone is the neutral status of a freshly created ephemeral session.
	StatusNone Status = ""
	// StatusActive marks a persisted session that resolved successfully.
	StatusActive Status = "active"
	// StatusNeedsSave marks a newly created session whose cookie must be emitted.
	StatusNeedsSave Status = "needs-save"
	// StatusNeedsDeletion marks a session whose cookie must be cleared.
	StatusNeedsDeletion Status = "needs-deletion"
)

// MaxAgeKey is the reserved data key holding the absolute expiry timestamp
// in epoch milliseconds. It is injected at creation time and is immutable
// except by explicit re-creation.
const MaxAgeKey = "maxAge"

// Session is the central entity: a resolved or created server-side session.
type Session struct {
	ID        string         `json:"id"`
	UserID    int64          `json:"user_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Temporary bool           `json:"temporary"`
	Status    Status         `json:"status,omitempty"`
}

// NewEphemeral produces a throwaway session for the current request only.
// It is never persisted and store-mutating operations treat it as inert.
func NewEphemeral() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Data:      make(map[string]any),
		Temporary: true,
	}
}

// MaxAge returns the absolute expiry timestamp in epoch milliseconds.
// The second return value reports whether an expiry is set at all.
func (s *Session) MaxAge() (int64, bool) {
	if s == nil || s.Data == nil {
		return 0, false
	}
	switch v := s.Data[MaxAgeKey].(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}

// IsExpired reports whether the session's maxAge is in the past. Sessions
// without a maxAge never expire; expiry is only evaluated at resolution
// time, there are no background sweeps.
func (s *Session) IsExpired(now time.Time) bool {
	maxAge, ok := s.MaxAge()
	if !ok {
		return false
	}
	return maxAge < now.UnixMilli()
}

// IsAnonymous returns true if the session is not bound to a user.
func (s *Session) IsAnonymous() bool {
	return s == nil || s.UserID == 0
}

// Get retrieves a value from session data.
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from session data.
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a value in session data. The reserved maxAge key is ignored;
// expiry can only be assigned by creating a session.
func (s *Session) Set(key string, value any) {
	if s == nil || key == MaxAgeKey {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}
