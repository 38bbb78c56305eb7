package session_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/sign"
)

func TestManager_Middleware(t *testing.T) {
	t.Run("puts resolved session into context", func(t *testing.T) {
		store := session.NewMemoryStore()
		seedRecord(t, store, "abc123", time.Now().Add(time.Hour).UnixMilli())

		manager, err := session.New(session.WithStore(store))
		require.NoError(t, err)

		var got *session.Session
		handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = session.MustFromContext(r.Context())
		}))

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "abc123"})
		handler.ServeHTTP(httptest.NewRecorder(), r)

		require.NotNil(t, got)
		assert.Equal(t, "abc123", got.ID)
		assert.Equal(t, session.StatusActive, got.Status)
	})

	t.Run("ephemeral session for anonymous request", func(t *testing.T) {
		manager, err := session.New(session.WithStore(session.NewMemoryStore()))
		require.NoError(t, err)

		handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.MustFromContext(r.Context())
			assert.True(t, sess.Temporary)
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		// No cookie is issued for ephemeral sessions.
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("clears cookie for expired session", func(t *testing.T) {
		store := session.NewMemoryStore()
		seedRecord(t, store, "abc123", time.Now().Add(-time.Hour).UnixMilli())

		manager, err := session.New(session.WithStore(store))
		require.NoError(t, err)

		handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.MustFromContext(r.Context())
			assert.Equal(t, session.StatusNeedsDeletion, sess.Status)
		}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "abc123"})
		handler.ServeHTTP(w, r)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sid", cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("store failure yields 500", func(t *testing.T) {
		store := &spyStore{Store: session.NewMemoryStore(), getErr: fmt.Errorf("boom")}
		manager, err := session.New(session.WithStore(store))
		require.NoError(t, err)

		handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run")
		}))

		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(&http.Cookie{Name: "sid", Value: "abc123"})
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestManager_WriteCookie(t *testing.T) {
	ctx := context.Background()

	t.Run("emits cookie for created session", func(t *testing.T) {
		manager, _ := setupManager(t)

		created, err := manager.Create(ctx, session.CreateArgs{Data: map[string]any{"foo": "bar"}})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		manager.WriteCookie(w, created)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sid", cookies[0].Name)
		assert.Equal(t, created.ID, cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Expires.After(time.Now()))
	})

	t.Run("signs cookie value when signing enabled", func(t *testing.T) {
		store := session.NewMemoryStore()
		manager, err := session.New(
			session.WithStore(store),
			session.WithKeys("current-key", "old-key"),
		)
		require.NoError(t, err)

		created, err := manager.Create(ctx, session.CreateArgs{})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		manager.WriteCookie(w, created)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)

		value, ok := sign.Unsign(cookies[0].Value, []string{"current-key"})
		require.True(t, ok)
		assert.Equal(t, created.ID, value)
	})

	t.Run("temporary session emits nothing", func(t *testing.T) {
		manager, _ := setupManager(t)

		w := httptest.NewRecorder()
		manager.WriteCookie(w, session.NewEphemeral())

		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("signed round trip through resolver", func(t *testing.T) {
		store := session.NewMemoryStore()
		manager, err := session.New(
			session.WithStore(store),
			session.WithKeys("current-key"),
		)
		require.NoError(t, err)

		created, err := manager.Create(ctx, session.CreateArgs{Data: map[string]any{"foo": "bar"}})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		manager.WriteCookie(w, created)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		h := headersWithCookie(cookies[0].Name, cookies[0].Value)

		resolved, err := manager.Resolve(ctx, h)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resolved.ID)
		assert.Equal(t, session.StatusActive, resolved.Status)
	})
}
