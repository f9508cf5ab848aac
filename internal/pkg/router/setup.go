package router

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/controllers"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/cache"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/hcaptcha"
	applogger "github.com/ManuelReschke/NewsNotes/internal/pkg/logger"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/metrics"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/middleware"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/oauth"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/session"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/statistics"
	"github.com/ManuelReschke/NewsNotes/views"
)

// Kind selects which application NewApplication builds.
type Kind string

const (
	News  Kind = "news"
	Notes Kind = "notes"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

// Dependencies are built once by the caller and shared by every router.
// Cache may be nil.
type Dependencies struct {
	Config *config.Config
	DB     *gorm.DB
	Cache  *redis.Client
	Repos  *repository.Repositories
	Log    *logrus.Logger
}

// Application is a configured fiber app plus the pieces tests and commands
// want to reach.
type Application struct {
	*fiber.App
	Metrics *metrics.Metrics
}

// NewApplication builds the news or the notes web application. Both share
// the auth pages and the operational endpoints.
func NewApplication(kind Kind, deps Dependencies) (*Application, error) {
	if kind != News && kind != Notes {
		return nil, fmt.Errorf("unknown application %q", kind)
	}
	cfg := deps.Config
	log := applogger.WithSubsystem(deps.Log, string(kind))

	var sessionStorage, oauthStorage fiber.Storage
	if cfg.Session.Storage == config.SessionStorageRedis {
		sessionStorage = session.NewRedisStorage(cfg.Cache, cache.DBSessions)
		oauthStorage = session.NewRedisStorage(cfg.Cache, cache.DBOAuth)
	}
	store := session.NewStore(cfg.Session, sessionStorage)

	var providers []string
	if cfg.OAuth.Enabled() {
		providers = oauth.Setup(cfg, oauthStorage)
	}

	m := metrics.New(string(kind))
	base := &controllers.Base{
		Site:            string(kind),
		Log:             log,
		Metrics:         m,
		Stats:           statistics.New(deps.Repos, deps.Cache, log),
		HCaptchaSiteKey: cfg.HCaptcha.SiteKey,
		Providers:       providers,
	}

	app := fiber.New(fiber.Config{
		AppName:      "NewsNotes " + string(kind),
		Views:        views.NewEngine(),
		ErrorHandler: controllers.ErrorHandler(base),
	})

	// recovery, request ids and logging
	app.Use(recover.New(), requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}), logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
		Output: deps.Log.Out,
	}), m.Middleware())

	authController := controllers.NewAuthController(
		base,
		deps.Repos.User,
		store,
		hcaptcha.NewVerifier(cfg.HCaptcha.Secret, nil),
	)

	mainController := controllers.NewMainController(base, deps.DB, deps.Cache)

	routers := []Router{
		NewOpsRouter(cfg, mainController, m),
		NewSessionRouter(cfg, store, deps.Repos.User, log, sessionStorage),
		NewAuthRouter(cfg, authController, controllers.NewOAuthController(authController), sessionStorage),
	}

	switch kind {
	case News:
		routers = append(routers, NewNewsRouter(
			controllers.NewNewsController(base, deps.Repos.News, deps.Repos.Comment, cfg.NewsPageSize),
			controllers.NewCommentController(base, deps.Repos.Comment),
		))
	case Notes:
		routers = append(routers, NewNotesRouter(
			mainController,
			controllers.NewNoteController(base, deps.Repos.Note),
		))
	}

	setup(app, routers...)

	return &Application{App: app, Metrics: m}, nil
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}

func requireAuth() fiber.Handler {
	return middleware.RequireAuth(constants.LoginRoute)
}
