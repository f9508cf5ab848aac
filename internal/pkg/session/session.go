package session

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
)

const (
	CookieName = "session_id"
	KeyUserID  = "user_id"
)

// NewRedisStorage returns fiber storage on the configured redis server using
// the given database number.
func NewRedisStorage(cfg config.CacheConfig, database int) fiber.Storage {
	return redis.New(redis.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Password: cfg.Password,
		Database: database,
		Reset:    false,
	})
}

// NewStore creates the session store. A nil storage keeps sessions in memory.
func NewStore(cfg config.SessionConfig, storage fiber.Storage) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: "Lax",
		Expiration:     cfg.Expiration,
		KeyLookup:      "cookie:" + CookieName,
	})
}

// Login binds user to a fresh session id.
func Login(store *session.Store, c *fiber.Ctx, user *models.User) error {
	sess, err := store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("failed to regenerate session: %w", err)
	}

	sess.Set(KeyUserID, user.ID)

	return sess.Save()
}

// Logout drops the session data and expires the cookie.
func Logout(store *session.Store, c *fiber.Ctx) error {
	sess, err := store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	return sess.Destroy()
}

// UserID returns the id stored at login, or 0 for anonymous sessions.
func UserID(store *session.Store, c *fiber.Ctx) (uint, error) {
	sess, err := store.Get(c)
	if err != nil {
		return 0, fmt.Errorf("failed to get session: %w", err)
	}

	id, ok := sess.Get(KeyUserID).(uint)
	if !ok {
		return 0, nil
	}
	return id, nil
}
