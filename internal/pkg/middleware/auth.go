package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session; anonymous requests are sent to
// loginPath with the requested URL in ?next=.
func RequireAuth(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !usercontext.IsLoggedIn(c) {
			return c.Redirect(constants.LoginRedirect(loginPath, c.OriginalURL()), fiber.StatusFound)
		}
		return c.Next()
	}
}
