package metawall

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process-wide settings. It is loaded once at startup and
// never mutated during request handling; the signing secret in particular has
// no runtime mutation path.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":3000"`
	Environment     string        `env:"APP_ENV" envDefault:"development"`
	SigningKey      string        `env:"JWT_SECRET" envDefault:"metawall-dev-secret"`
	TokenExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
	DatabaseDSN     string        `env:"DATABASE_DSN" envDefault:"file:metawall.db?cache=shared&mode=rwc"`
}

// LoadConfig populates a Config from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing env config: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether diagnostic detail may be included in error
// responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
