package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/flash"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/metrics"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/statistics"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/viewmodel"
)

const (
	layoutTemplate = "layouts/main"
	layoutKey      = "layout"
	csrfLocalsKey  = "csrf"
)

// Base carries what every controller of one application shares.
type Base struct {
	Site            string
	Log             *logrus.Entry
	Metrics         *metrics.Metrics
	Stats           *statistics.Service
	HCaptchaSiteKey string
	Providers       []string
}

// render answers with the page context. Clients asking for JSON get the
// context itself, everybody else the rendered template.
func (b *Base) render(c *fiber.Ctx, template string, data fiber.Map) error {
	if wantsJSON(c) {
		return c.JSON(data)
	}

	view := fiber.Map{layoutKey: b.layout(c, template)}
	for k, v := range data {
		view[k] = v
	}
	return c.Render(template, view, layoutTemplate)
}

func (b *Base) layout(c *fiber.Ctx, page string) viewmodel.Layout {
	token, _ := c.Locals(csrfLocalsKey).(string)
	return viewmodel.Layout{
		Site:            b.Site,
		Page:            page,
		User:            usercontext.GetUserContext(c),
		Msg:             flash.Get(c),
		CSRFToken:       token,
		HCaptchaSiteKey: b.HCaptchaSiteKey,
		Providers:       b.Providers,
	}
}

func redirect(c *fiber.Ctx, location string) error {
	return c.Redirect(location, fiber.StatusFound)
}

// statsChanged drops the cached site totals after a write that changes them.
func (b *Base) statsChanged(c *fiber.Ctx) {
	if b.Stats == nil {
		return
	}
	if err := b.Stats.Reset(c.UserContext()); err != nil {
		b.Log.WithError(err).Warn("could not reset statistics cache")
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}

// parseID reads a positive integer path parameter. Anything else is a 404,
// the same as an unknown id.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// notFoundOr maps a missing record to 404 and passes other errors through.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.ErrNotFound
	}
	return err
}

func formValues(c *fiber.Ctx, fields ...string) map[string]string {
	return forms.Values(c.FormValue, fields...)
}

// ErrorHandler renders fiber errors as a page or as JSON. Unexpected errors
// are logged and shown as 500 without details.
func ErrorHandler(b *Base) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			b.Log.WithError(err).WithField("path", c.Path()).Error("request failed")
		}

		c.Status(code)
		if wantsJSON(c) {
			return c.JSON(fiber.Map{"status": code, "error": message})
		}

		renderErr := b.render(c, "errors/error", fiber.Map{"status": code, "error": message})
		if renderErr != nil {
			b.Log.WithError(renderErr).Error("could not render error page")
			return c.SendString(message)
		}
		return nil
	}
}
