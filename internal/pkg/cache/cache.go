package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
)

// Database numbers inside the redis instance. The cache itself uses 0.
const (
	DBCache    = 0
	DBSessions = 1
	DBOAuth    = 2
)

// NewClient creates a redis client for the cache server. It returns nil when
// the cache is disabled.
func NewClient(cfg config.CacheConfig, log *logrus.Logger) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     Addr(cfg),
		Password: cfg.Password,
		DB:       DBCache,
	})

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Warnf("Could not connect to cache server: %v", err)
	} else {
		log.Infof("Successfully connected to cache server: %s", pong)
	}

	return client
}

func Addr(cfg config.CacheConfig) string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}

// Ping reports the cache status for health checks. A nil client counts as
// disabled, not as an error.
func Ping(ctx context.Context, client *redis.Client) (string, error) {
	if client == nil {
		return "disabled", nil
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return "error", err
	}
	return "ok", nil
}
