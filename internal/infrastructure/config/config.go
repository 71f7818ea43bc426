package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	// BaseURL is the root of the reservation backend's JSON API.
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8000/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=15s"`
}

type SessionConfig struct {
	CookieName   string        `env:"SESSION_COOKIE,        default=sb_session"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE, default=false"`
	TTL          time.Duration `env:"SESSION_TTL,           default=24h"`
}

// RedisConfig selects the durable session store. An empty Addr switches the
// gateway to in-memory session storage.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
