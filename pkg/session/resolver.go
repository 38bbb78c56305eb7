package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/sign"
)

// Resolve maps inbound request headers to a session. Every per-request
// ambiguity (missing credential, bad signature, unknown token) degrades to
// an ephemeral session so a bad cookie can never crash the request
// pipeline; only store failures propagate.
//
// The resolution proceeds through fixed states: no credential, signature
// invalid, not found, expired, active. Expired sessions are deleted from
// the store and returned with StatusNeedsDeletion so the caller clears the
// cookie; they are never reported active.
func (m *Manager) Resolve(ctx context.Context, headers http.Header) (*Session, error) {
	authHeader := headers.Get("Authorization")
	token := m.cookieValue(headers)

	if authHeader == "" && token == "" {
		return NewEphemeral(), nil
	}

	if m.config.Signed {
		unsigned, ok := sign.Unsign(token, m.config.Keys)
		if !ok {
			m.log.DebugContext(ctx, "session cookie signature rejected",
				slog.String("cookie", m.config.CookieName))
			return NewEphemeral(), nil
		}
		token = unsigned
	}

	rec, err := m.store.Get(ctx, token)
	if errors.Is(err, ErrSessionNotFound) {
		return NewEphemeral(), nil
	}
	if err != nil {
		return nil, err
	}

	sess, err := m.sessionFromRecord(rec)
	if err != nil {
		return nil, err
	}
	sess.Temporary = false

	if sess.IsExpired(time.Now()) {
		// The delete is issued before the session is handed back; the
		// record is no longer authoritative for reads in this request.
		if err := m.store.Delete(ctx, sess.ID); err != nil {
			return nil, err
		}
		sess.Status = StatusNeedsDeletion
		return sess, nil
	}

	sess.Status = StatusActive
	return sess, nil
}

// cookieValue extracts the configured session cookie from the raw Cookie
// header. Parsing is delegated to net/http, which skips malformed pairs.
func (m *Manager) cookieValue(headers http.Header) string {
	r := http.Request{Header: headers}
	c, err := r.Cookie(m.config.CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
