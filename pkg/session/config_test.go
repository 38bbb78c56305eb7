package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	assert.Equal(t, "sid", cfg.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.MaxAge)
	assert.False(t, cfg.Signed)
	assert.Empty(t, cfg.Keys)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("SESSION_COOKIE_NAME", "custom_sid")
	t.Setenv("SESSION_SIGNED", "true")
	t.Setenv("SESSION_KEYS", "key-one,key-two")
	t.Setenv("SESSION_MAX_AGE", "48h")

	cfg, err := session.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "custom_sid", cfg.CookieName)
	assert.True(t, cfg.Signed)
	assert.Equal(t, []string{"key-one", "key-two"}, cfg.Keys)
	assert.Equal(t, 48*time.Hour, cfg.MaxAge)
}
