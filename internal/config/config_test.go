package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DB_CONNECTION_STRING", "DB_AUTO_MIGRATE", "SESSION_STORE", "SESSION_TTL", "AUTH_MIN_PASSWORD_LENGTH", "GO_ENV"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "notes.sqlite", cfg.Database.Connection)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 6, cfg.Auth.MinPasswordLength)
	assert.Equal(t, "notes_session", cfg.Session.CookieName)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_CONNECTION_STRING", "host=db user=app")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("AUTH_MIN_PASSWORD_LENGTH", "10")
	t.Setenv("GO_ENV", "production")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=db user=app", cfg.Database.Connection)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, 90*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 10, cfg.Auth.MinPasswordLength)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.Tracing.Enabled)
}
