package metawall_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	metawall "github.com/kelvin80121/metawall"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := metawall.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, ":3000", cfg.HTTPAddr)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("JWT_EXPIRATION", "30m")
	t.Setenv("DATABASE_DSN", "file:prod.db")

	cfg, err := metawall.LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "prod-secret", cfg.SigningKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenExpiration)
	assert.Equal(t, "file:prod.db", cfg.DatabaseDSN)
	assert.False(t, cfg.IsDevelopment())
}
