package session

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets the session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithKeys enables signed-cookie verification with the given keys in
// rotation order.
func WithKeys(keys ...string) Option {
	return func(m *Manager) {
		m.config.Signed = true
		m.config.Keys = keys
	}
}

// WithMaxAge sets the lifetime assigned to newly created sessions
func WithMaxAge(maxAge time.Duration) Option {
	return func(m *Manager) {
		m.config.MaxAge = maxAge
	}
}

// WithLogger sets the logger used for resolution diagnostics
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}
