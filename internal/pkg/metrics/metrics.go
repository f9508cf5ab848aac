package metrics

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "newsnotes"

// Metrics holds the collectors of one application. Each application gets its
// own registry so tests can build many apps side by side.
type Metrics struct {
	Registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	Logins          *prometheus.CounterVec
	Signups         prometheus.Counter
	CommentsCreated prometheus.Counter
	CommentsEdited  prometheus.Counter
	CommentsDeleted prometheus.Counter
	BadWordsBlocked prometheus.Counter
	NotesCreated    prometheus.Counter
	NotesUpdated    prometheus.Counter
	NotesDeleted    prometheus.Counter
	DuplicateSlugs  prometheus.Counter
}

func New(app string) *Metrics {
	reg := prometheus.NewRegistry()
	labels := prometheus.Labels{"app": app}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        name,
			Help:        help,
			ConstLabels: labels,
		})
	}

	m := &Metrics{
		Registry: reg,
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "HTTP requests by method, route and status.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		Logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "logins_total",
			Help:        "Login attempts by result.",
			ConstLabels: labels,
		}, []string{"result"}),
		Signups:         counter("signups_total", "Registered users."),
		CommentsCreated: counter("comments_created_total", "Comments created."),
		CommentsEdited:  counter("comments_edited_total", "Comments edited."),
		CommentsDeleted: counter("comments_deleted_total", "Comments deleted."),
		BadWordsBlocked: counter("bad_words_blocked_total", "Comments rejected for bad words."),
		NotesCreated:    counter("notes_created_total", "Notes created."),
		NotesUpdated:    counter("notes_updated_total", "Notes updated."),
		NotesDeleted:    counter("notes_deleted_total", "Notes deleted."),
		DuplicateSlugs:  counter("duplicate_slugs_total", "Note submissions rejected for a taken slug."),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests,
		m.Logins,
		m.Signups,
		m.CommentsCreated,
		m.CommentsEdited,
		m.CommentsDeleted,
		m.BadWordsBlocked,
		m.NotesCreated,
		m.NotesUpdated,
		m.NotesDeleted,
		m.DuplicateSlugs,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}

// Middleware counts every request by its route pattern, so /news/1/ and
// /news/2/ share a series.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		m.Requests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}
