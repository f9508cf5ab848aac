package controllers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/forms"
	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/constants"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/usercontext"
)

var noteFields = []string{"title", "text", "slug"}

// NoteController serves the private notes of the logged-in user. Every
// lookup is scoped to the author, so other users' notes are 404.
type NoteController struct {
	*Base
	noteRepo repository.NoteRepository
}

func NewNoteController(base *Base, noteRepo repository.NoteRepository) *NoteController {
	return &NoteController{Base: base, noteRepo: noteRepo}
}

func (nc *NoteController) HandleList(c *fiber.Ctx) error {
	notes, err := nc.noteRepo.ListByAuthor(usercontext.GetUserID(c))
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	return nc.render(c, "notes/list", fiber.Map{"object_list": notes})
}

func (nc *NoteController) HandleAdd(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		return nc.renderForm(c, forms.Empty(), nil)
	}

	form, err := forms.ValidateNote(formValues(c, noteFields...), nc.noteRepo, 0)
	if err != nil {
		return fmt.Errorf("validate note: %w", err)
	}
	if !form.Valid() {
		nc.countSlugConflict(form)
		return nc.renderForm(c, form, nil)
	}

	note := &models.Note{
		Title:    form.Get("title"),
		Text:     form.Get("text"),
		Slug:     form.Get("slug"),
		AuthorID: usercontext.GetUserID(c),
	}
	if err := nc.noteRepo.Create(note); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nc.rejectSlug(c, form, nil)
		}
		return fmt.Errorf("create note: %w", err)
	}
	nc.Metrics.NotesCreated.Inc()
	nc.statsChanged(c)
	nc.Log.WithField("slug", note.Slug).Info("note created")

	return redirect(c, constants.NoteDoneRoute)
}

func (nc *NoteController) HandleDone(c *fiber.Ctx) error {
	return nc.render(c, "notes/success", fiber.Map{})
}

func (nc *NoteController) HandleDetail(c *fiber.Ctx) error {
	note, err := nc.loadOwnNote(c)
	if err != nil {
		return err
	}
	return nc.render(c, "notes/detail", fiber.Map{"note": note})
}

func (nc *NoteController) HandleEdit(c *fiber.Ctx) error {
	note, err := nc.loadOwnNote(c)
	if err != nil {
		return err
	}

	if c.Method() != fiber.MethodPost {
		form := forms.New(map[string]string{
			"title": note.Title,
			"text":  note.Text,
			"slug":  note.Slug,
		})
		return nc.renderForm(c, form, note)
	}

	form, err := forms.ValidateNote(formValues(c, noteFields...), nc.noteRepo, note.ID)
	if err != nil {
		return fmt.Errorf("validate note: %w", err)
	}
	if !form.Valid() {
		nc.countSlugConflict(form)
		return nc.renderForm(c, form, note)
	}

	// note keeps the stored slug so a rejected form still posts to it.
	updated := *note
	updated.Title = form.Get("title")
	updated.Text = form.Get("text")
	updated.Slug = form.Get("slug")
	if err := nc.noteRepo.Update(&updated); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nc.rejectSlug(c, form, note)
		}
		return fmt.Errorf("update note %d: %w", note.ID, err)
	}
	nc.Metrics.NotesUpdated.Inc()

	return redirect(c, constants.NoteDoneRoute)
}

func (nc *NoteController) HandleDeleteConfirm(c *fiber.Ctx) error {
	note, err := nc.loadOwnNote(c)
	if err != nil {
		return err
	}
	return nc.render(c, "notes/delete", fiber.Map{"note": note})
}

func (nc *NoteController) HandleDelete(c *fiber.Ctx) error {
	note, err := nc.loadOwnNote(c)
	if err != nil {
		return err
	}

	if err := nc.noteRepo.Delete(note); err != nil {
		return fmt.Errorf("delete note %d: %w", note.ID, err)
	}
	nc.Metrics.NotesDeleted.Inc()
	nc.statsChanged(c)
	nc.Log.WithField("slug", note.Slug).Info("note deleted")

	return redirect(c, constants.NoteDoneRoute)
}

func (nc *NoteController) loadOwnNote(c *fiber.Ctx) (*models.Note, error) {
	note, err := nc.noteRepo.GetBySlugForAuthor(c.Params("slug"), usercontext.GetUserID(c))
	if err != nil {
		return nil, notFoundOr(err)
	}
	return note, nil
}

// rejectSlug handles a slug that was taken between validation and insert.
func (nc *NoteController) rejectSlug(c *fiber.Ctx, form *forms.Form, note *models.Note) error {
	form.AddError("slug", forms.DuplicateSlugMessage(form.Get("slug")))
	nc.Metrics.DuplicateSlugs.Inc()
	return nc.renderForm(c, form, note)
}

func (nc *NoteController) countSlugConflict(form *forms.Form) {
	for _, msg := range form.FieldErrors("slug") {
		if msg == forms.DuplicateSlugMessage(form.Get("slug")) {
			nc.Metrics.DuplicateSlugs.Inc()
			return
		}
	}
}

// renderForm is shared by add and edit; note is nil when adding.
func (nc *NoteController) renderForm(c *fiber.Ctx, form *forms.Form, note *models.Note) error {
	data := fiber.Map{"form": form}
	if note != nil {
		data["note"] = note
	}
	return nc.render(c, "notes/form", data)
}
