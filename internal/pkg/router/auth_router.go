package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/ManuelReschke/NewsNotes/app/controllers"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
)

// AuthRouter mounts /auth/ in both applications.
type AuthRouter struct {
	cfg     *config.Config
	auth    *controllers.AuthController
	oauth   *controllers.OAuthController
	storage fiber.Storage
}

func NewAuthRouter(cfg *config.Config, auth *controllers.AuthController, oauth *controllers.OAuthController, storage fiber.Storage) *AuthRouter {
	return &AuthRouter{cfg: cfg, auth: auth, oauth: oauth, storage: storage}
}

func (a AuthRouter) InstallRouter(app *fiber.App) {
	throttle := a.rateLimit()

	app.Get(constants.LoginRoute, a.auth.HandleLoginPage)
	app.Post(constants.LoginRoute, throttle, a.auth.HandleLogin)
	app.Get(constants.LogoutRoute, a.auth.HandleLogout)
	app.Post(constants.LogoutRoute, a.auth.HandleLogout)
	app.Get(constants.SignupRoute, a.auth.HandleSignupPage)
	app.Post(constants.SignupRoute, throttle, a.auth.HandleSignup)

	if len(a.auth.Providers) > 0 {
		app.Get(constants.ProviderRoute, a.oauth.HandleBegin)
		app.Get(constants.ProviderRoute+"/callback", a.oauth.HandleCallback)
	}
}

// rateLimit limits credential submissions per client IP. A zero limit turns
// it off.
func (a AuthRouter) rateLimit() fiber.Handler {
	if a.cfg.AuthRateLimit <= 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}
	return limiter.New(limiter.Config{
		Max:        a.cfg.AuthRateLimit,
		Expiration: 1 * time.Minute,
		Storage:    a.storage,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Слишком много попыток, попробуйте позже.")
		},
	})
}
