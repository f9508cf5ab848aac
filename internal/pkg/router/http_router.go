package router

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	fibersession "github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"

	"github.com/ManuelReschke/NewsNotes/app/controllers"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/metrics"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/middleware"
)

// OpsRouter serves health, metrics and the optional fiber monitor. It is
// installed before the session middleware so probes never touch the
// database through it.
type OpsRouter struct {
	cfg     *config.Config
	main    *controllers.MainController
	metrics *metrics.Metrics
}

func NewOpsRouter(cfg *config.Config, main *controllers.MainController, m *metrics.Metrics) *OpsRouter {
	return &OpsRouter{cfg: cfg, main: main, metrics: m}
}

func (o OpsRouter) InstallRouter(app *fiber.App) {
	app.Get(constants.HealthRoute, o.main.HandleHealth)
	app.Get(constants.MetricsRoute, o.metrics.Handler())

	if o.cfg.Monitor.Enabled() {
		app.Get(constants.MonitorRoute, basicauth.New(basicauth.Config{
			Users: map[string]string{
				o.cfg.Monitor.User: o.cfg.Monitor.Password,
			},
		}), monitor.New())
	}
}

// SessionRouter resolves the current user and, when enabled, guards every
// form with a CSRF token.
type SessionRouter struct {
	cfg     *config.Config
	store   *fibersession.Store
	users   repository.UserRepository
	log     *logrus.Entry
	storage fiber.Storage
}

func NewSessionRouter(cfg *config.Config, store *fibersession.Store, users repository.UserRepository, log *logrus.Entry, storage fiber.Storage) *SessionRouter {
	return &SessionRouter{cfg: cfg, store: store, users: users, log: log, storage: storage}
}

func (s SessionRouter) InstallRouter(app *fiber.App) {
	app.Use(middleware.UserContextMiddleware(s.store, s.users, s.log))

	if !s.cfg.CSRFEnabled {
		return
	}

	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:_csrf",
		ContextKey:     "csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		Expiration:     1 * time.Hour,
		CookieSecure:   s.cfg.Session.CookieSecure,
		Storage:        s.storage,
		Next: func(c *fiber.Ctx) bool {
			// OAuth callbacks come back from the provider without a token.
			return strings.HasSuffix(c.Path(), "/callback")
		},
	}))
}
