package config

import (
	"time"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/env"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	SessionStorageMemory = "memory"
	SessionStorageRedis  = "redis"
)

// Config holds everything the applications need at start-up. It is built once
// in main and handed to every component explicitly.
type Config struct {
	AppEnv   string
	Host     string
	Port     string
	LogLevel string

	Database DatabaseConfig
	Cache    CacheConfig
	Session  SessionConfig
	OAuth    OAuthConfig
	HCaptcha HCaptchaConfig
	Monitor  MonitorConfig

	CSRFEnabled   bool
	AuthRateLimit int
	NewsPageSize  int
}

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	Path       string
	MaxRetries int
	RetryDelay time.Duration
	LogQueries bool
	// AutoMigrate lets gorm manage a MySQL schema instead of the
	// migrations in migrations/. SQLite is always auto-migrated.
	AutoMigrate bool
}

type CacheConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
}

type SessionConfig struct {
	Storage      string
	Expiration   time.Duration
	CookieSecure bool
}

type OAuthConfig struct {
	PublicDomain  string
	GoogleKey     string
	GoogleSecret  string
	DiscordKey    string
	DiscordSecret string
}

// Enabled reports whether at least one provider has credentials.
func (o OAuthConfig) Enabled() bool {
	return (o.GoogleKey != "" && o.GoogleSecret != "") || (o.DiscordKey != "" && o.DiscordSecret != "")
}

type HCaptchaConfig struct {
	SiteKey string
	Secret  string
}

func (h HCaptchaConfig) Enabled() bool {
	return h.Secret != ""
}

type MonitorConfig struct {
	User     string
	Password string
}

func (m MonitorConfig) Enabled() bool {
	return m.User != "" && m.Password != ""
}

// Load reads the configuration from the environment (and the .env map when
// env.SetupEnvFile ran before).
func Load() *Config {
	dev := env.IsDev()

	return &Config{
		AppEnv:   env.GetEnv("APP_ENV", "prod"),
		Host:     env.GetEnv("APP_HOST", "localhost"),
		Port:     env.GetEnv("APP_PORT", "8000"),
		LogLevel: env.GetEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			Driver:     env.GetEnv("DB_DRIVER", DriverMySQL),
			Host:       env.GetEnv("DB_HOST", "127.0.0.1"),
			Port:       env.GetEnv("DB_PORT", "3306"),
			User:       env.GetEnv("DB_USER", ""),
			Password:   env.GetEnv("DB_PASSWORD", ""),
			Name:       env.GetEnv("DB_NAME", "newsnotes"),
			Path:       env.GetEnv("DB_PATH", "newsnotes.sqlite3"),
			MaxRetries: env.GetEnvInt("DB_MAX_RETRIES", 5),
			RetryDelay: env.GetEnvDuration("DB_RETRY_DELAY", 5*time.Second),
			LogQueries: env.GetEnvBool("DB_LOG_QUERIES", false),

			AutoMigrate: env.GetEnvBool("DB_AUTO_MIGRATE", false),
		},
		Cache: CacheConfig{
			Enabled:  env.GetEnvBool("CACHE_ENABLED", false),
			Host:     env.GetEnv("CACHE_HOST", "localhost"),
			Port:     env.GetEnvInt("CACHE_PORT", 6379),
			Password: env.GetEnv("CACHE_PASSWORD", ""),
		},
		Session: SessionConfig{
			Storage:      env.GetEnv("SESSION_STORAGE", SessionStorageMemory),
			Expiration:   env.GetEnvDuration("SESSION_EXPIRATION", 14*24*time.Hour),
			CookieSecure: env.GetEnvBool("SESSION_COOKIE_SECURE", !dev),
		},
		OAuth: OAuthConfig{
			PublicDomain:  env.GetEnv("PUBLIC_DOMAIN", ""),
			GoogleKey:     env.GetEnv("GOOGLE_KEY", ""),
			GoogleSecret:  env.GetEnv("GOOGLE_SECRET", ""),
			DiscordKey:    env.GetEnv("DISCORD_KEY", ""),
			DiscordSecret: env.GetEnv("DISCORD_SECRET", ""),
		},
		HCaptcha: HCaptchaConfig{
			SiteKey: env.GetEnv("HCAPTCHA_SITEKEY", ""),
			Secret:  env.GetEnv("HCAPTCHA_SECRET", ""),
		},
		Monitor: MonitorConfig{
			User:     env.GetEnv("MONITOR_USER", ""),
			Password: env.GetEnv("MONITOR_PASSWORD", ""),
		},
		CSRFEnabled:   env.GetEnvBool("CSRF_ENABLED", true),
		AuthRateLimit: env.GetEnvInt("AUTH_RATE_LIMIT", 20),
		NewsPageSize:  env.GetEnvInt("NEWS_COUNT_ON_HOME_PAGE", 10),
	}
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

// Testing returns a configuration suitable for in-process tests: in-memory
// sessions, no CSRF, no rate limiting and no external services.
func Testing() *Config {
	return &Config{
		AppEnv:   "test",
		Host:     "localhost",
		Port:     "0",
		LogLevel: "error",
		Database: DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"},
		Session: SessionConfig{
			Storage:    SessionStorageMemory,
			Expiration: time.Hour,
		},
		NewsPageSize: 10,
	}
}
