package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsByRoute(t *testing.T) {
	m := New("news")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/news/:id/", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/missing/", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	for _, path := range []string{"/news/1/", "/news/2/", "/missing/"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		_ = resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/news/:id/", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "/missing/", "404")))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New("notes")
	m.NotesCreated.Inc()

	app := fiber.New()
	app.Get("/metrics", m.Handler())

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `newsnotes_notes_created_total{app="notes"} 1`)
}
