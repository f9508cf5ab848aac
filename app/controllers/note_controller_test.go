package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/logger"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/metrics"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
	"github.com/ManuelReschke/NewsNotes/views"
)

// racingNoteRepo passes the uniqueness check but fails the write, as if
// another request took the slug in between.
type racingNoteRepo struct {
	note models.Note
}

func (r *racingNoteRepo) Create(note *models.Note) error { return gorm.ErrDuplicatedKey }

func (r *racingNoteRepo) GetBySlug(slug string) (*models.Note, error) {
	return r.GetBySlugForAuthor(slug, r.note.AuthorID)
}

func (r *racingNoteRepo) GetBySlugForAuthor(slug string, authorID uint) (*models.Note, error) {
	if slug != r.note.Slug || authorID != r.note.AuthorID {
		return nil, gorm.ErrRecordNotFound
	}
	n := r.note
	return &n, nil
}

func (r *racingNoteRepo) ListByAuthor(authorID uint) ([]models.Note, error) {
	return []models.Note{r.note}, nil
}

func (r *racingNoteRepo) Update(note *models.Note) error { return gorm.ErrDuplicatedKey }

func (r *racingNoteRepo) Delete(note *models.Note) error { return nil }

func (r *racingNoteRepo) SlugExistsExceptID(slug string, id uint) (bool, error) { return false, nil }

func (r *racingNoteRepo) Count() (int64, error) { return 1, nil }

func TestEditKeepsStoredSlugWhenUpdateHitsDuplicate(t *testing.T) {
	author := &models.User{ID: 1, Username: "Valera"}
	repo := &racingNoteRepo{note: models.Note{ID: 7, Title: "Пятница", Text: "Впереди выходные", Slug: "friday", AuthorID: author.ID}}
	base := &Base{
		Site:    "notes",
		Log:     logger.WithSubsystem(logger.Discard(), "notes"),
		Metrics: metrics.New("notes"),
	}
	nc := NewNoteController(base, repo)

	app := fiber.New(fiber.Config{Views: views.NewEngine()})
	app.Use(func(c *fiber.Ctx) error {
		usercontext.Set(c, usercontext.FromUser(author))
		return c.Next()
	})
	app.Post("/edit/:slug/", nc.HandleEdit)

	form := url.Values{"title": {"Суббота"}, "text": {"Настали выходные"}, "slug": {"saturday"}}
	req := httptest.NewRequest(http.MethodPost, "/edit/friday/", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ctx struct {
		Note models.Note `json:"note"`
		Form forms.Form  `json:"form"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ctx))

	assert.Equal(t, "friday", ctx.Note.Slug)
	assert.Equal(t, "saturday", ctx.Form.Data["slug"])
	assert.Equal(t, []string{forms.DuplicateSlugMessage("saturday")}, ctx.Form.Errors["slug"])
	assert.Equal(t, float64(1), testutil.ToFloat64(base.Metrics.DuplicateSlugs))
}
