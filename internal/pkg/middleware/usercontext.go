package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/session"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session to a user for every request.
// Sessions pointing at a deleted user are treated as anonymous.
func UserContextMiddleware(store *fibersession.Store, users repository.UserRepository, log *logrus.Entry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		usercontext.Set(c, usercontext.Anonymous())

		userID, err := session.UserID(store, c)
		if err != nil {
			log.WithError(err).Warn("could not read session")
			return c.Next()
		}
		if userID == 0 {
			return c.Next()
		}

		user, err := users.GetByID(userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			return c.Next()
		}

		usercontext.Set(c, usercontext.FromUser(user))
		return c.Next()
	}
}
