package session

import (
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds session configuration. It is constructed once at startup,
// validated by New and never mutated afterwards.
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// Signed enables signed-cookie verification. Requires at least one key.
	Signed bool `env:"SESSION_SIGNED" envDefault:"false"`

	// Keys are the signing secrets in rotation order: the first key signs
	// new cookies, every key is accepted during verification.
	Keys []string `env:"SESSION_KEYS" envSeparator:","`

	// MaxAge is the lifetime assigned to newly created sessions.
	MaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"168h"`

	// SecureCookies enables the Secure flag on session cookies.
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		CookieName: "sid",
		MaxAge:     7 * 24 * time.Hour,
	}
}

var dotenvLoaded sync.Once

// LoadConfig populates a Config from environment variables, loading the
// default .env file first if one exists.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
