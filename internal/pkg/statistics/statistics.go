package statistics

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ManuelReschke/NewsNotes/app/repository"
)

const (
	CacheKeyUsers    = "statistics:users:total"
	CacheKeyNews     = "statistics:news:total"
	CacheKeyComments = "statistics:comments:total"
	CacheKeyNotes    = "statistics:notes:total"
	CacheExpiration  = 5 * time.Minute
)

// Data holds the site totals shown on the home page.
type Data struct {
	Users    int64 `json:"users"`
	News     int64 `json:"news"`
	Comments int64 `json:"comments"`
	Notes    int64 `json:"notes"`
}

// Service counts rows through the repositories and keeps the totals in the
// cache for CacheExpiration. Without a cache client every call hits the
// database.
type Service struct {
	repos *repository.Repositories
	cache *redis.Client
	log   *logrus.Entry
}

func New(repos *repository.Repositories, cacheClient *redis.Client, log *logrus.Entry) *Service {
	return &Service{repos: repos, cache: cacheClient, log: log}
}

// Get returns all totals. Failing counters are reported as 0.
func (s *Service) Get(ctx context.Context) Data {
	return Data{
		Users:    s.count(ctx, CacheKeyUsers, s.repos.User.Count),
		News:     s.count(ctx, CacheKeyNews, s.repos.News.Count),
		Comments: s.count(ctx, CacheKeyComments, s.repos.Comment.Count),
		Notes:    s.count(ctx, CacheKeyNotes, s.repos.Note.Count),
	}
}

// Reset drops the cached totals so the next Get recounts.
func (s *Service) Reset(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, CacheKeyUsers, CacheKeyNews, CacheKeyComments, CacheKeyNotes).Err()
}

func (s *Service) count(ctx context.Context, key string, fromDB func() (int64, error)) int64 {
	if s.cache != nil {
		val, err := s.cache.Get(ctx, key).Result()
		switch {
		case err == nil:
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				return n
			}
		case !errors.Is(err, redis.Nil):
			s.log.WithError(err).Warnf("Error reading %s from cache", key)
		}
	}

	n, err := fromDB()
	if err != nil {
		s.log.WithError(err).Errorf("Error counting %s", key)
		return 0
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, strconv.FormatInt(n, 10), CacheExpiration).Err(); err != nil {
			s.log.WithError(err).Warnf("Error caching %s", key)
		}
	}

	return n
}
