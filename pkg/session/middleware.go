package session

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/sign"
)

// Middleware resolves the session for every request and stores it in the
// request context. When resolution finds an expired session the clearing
// cookie is written before the handler runs, completing the needs-deletion
// contract on behalf of the caller.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.Resolve(r.Context(), r.Header)
		if err != nil {
			http.Error(w, "Session error", http.StatusInternalServerError)
			return
		}

		if sess.Status == StatusNeedsDeletion {
			m.ClearCookie(w)
		}

		ctx := WithSession(r.Context(), sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WriteCookie emits the session cookie for a needs-save session. The value
// is the session ID, signed with the first configured key when signed
// cookies are enabled. Cookie expiry follows the session's own maxAge.
func (m *Manager) WriteCookie(w http.ResponseWriter, sess *Session) {
	if sess == nil || sess.Temporary {
		return
	}

	value := sess.ID
	if m.config.Signed {
		value = sign.Sign(value, m.config.Keys[0])
	}

	cookie := &http.Cookie{
		Name:     m.config.CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.config.SecureCookies,
	}
	if maxAge, ok := sess.MaxAge(); ok {
		cookie.Expires = time.UnixMilli(maxAge)
	}

	http.SetCookie(w, cookie)
}

// ClearCookie removes the session cookie from the client
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.config.SecureCookies,
	})
}
