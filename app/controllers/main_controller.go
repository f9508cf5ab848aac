package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/cache"
)

// MainController serves the pages that do not belong to a model.
type MainController struct {
	*Base
	db    *gorm.DB
	cache *redis.Client
}

func NewMainController(base *Base, db *gorm.DB, cacheClient *redis.Client) *MainController {
	return &MainController{Base: base, db: db, cache: cacheClient}
}

// HandleHome renders the landing page of the notes application.
func (mc *MainController) HandleHome(c *fiber.Ctx) error {
	return mc.render(c, "notes/home", fiber.Map{
		"stats": mc.Stats.Get(c.UserContext()),
	})
}

// HandleHealth reports whether the database and the cache answer.
func (mc *MainController) HandleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	result := fiber.Map{"status": "ok", "database": "ok"}

	sqlDB, err := mc.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		mc.Log.WithError(err).Warn("database health check failed")
		result["database"] = "error"
		result["status"] = "error"
		status = fiber.StatusServiceUnavailable
	}

	cacheStatus, err := cache.Ping(ctx, mc.cache)
	result["cache"] = cacheStatus
	if err != nil {
		mc.Log.WithError(err).Warn("cache health check failed")
		result["status"] = "error"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(result)
}
