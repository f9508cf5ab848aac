package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/env"
)

func TestLoadDefaults(t *testing.T) {
	env.Env = map[string]string{}
	t.Cleanup(func() { env.Env = nil })

	cfg := Load()

	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 10, cfg.NewsPageSize)
	assert.Equal(t, SessionStorageMemory, cfg.Session.Storage)
	assert.True(t, cfg.CSRFEnabled)
	assert.False(t, cfg.OAuth.Enabled())
	assert.False(t, cfg.HCaptcha.Enabled())
	assert.False(t, cfg.Monitor.Enabled())
}

func TestLoadFromEnvMap(t *testing.T) {
	env.Env = map[string]string{
		"APP_ENV":                 "dev",
		"DB_DRIVER":               "sqlite",
		"DB_PATH":                 "/tmp/db.sqlite3",
		"NEWS_COUNT_ON_HOME_PAGE": "5",
		"SESSION_STORAGE":         "redis",
		"SESSION_EXPIRATION":      "2h",
		"GOOGLE_KEY":              "key",
		"GOOGLE_SECRET":           "secret",
		"MONITOR_USER":            "admin",
		"MONITOR_PASSWORD":        "pw",
	}
	t.Cleanup(func() { env.Env = nil })

	cfg := Load()

	assert.True(t, cfg.IsDev())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/db.sqlite3", cfg.Database.Path)
	assert.Equal(t, 5, cfg.NewsPageSize)
	assert.Equal(t, SessionStorageRedis, cfg.Session.Storage)
	assert.Equal(t, 2*time.Hour, cfg.Session.Expiration)
	assert.False(t, cfg.Session.CookieSecure)
	assert.True(t, cfg.OAuth.Enabled())
	assert.True(t, cfg.Monitor.Enabled())
}
