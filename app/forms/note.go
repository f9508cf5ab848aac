package forms

import (
	"github.com/ManuelReschke/NewsNotes/internal/pkg/slugify"
)

// SlugWarning follows the offending slug in the duplicate-slug error.
const SlugWarning = " - такой slug уже существует, придумайте уникальное значение!"

const SlugMaxLength = 100

// SlugChecker reports whether a slug belongs to a note other than id.
// Pass id 0 when no note is being edited.
type SlugChecker interface {
	SlugExistsExceptID(slug string, id uint) (bool, error)
}

type NoteInput struct {
	Title string `form:"title" validate:"required,max=100"`
	Text  string `form:"text" validate:"required"`
	Slug  string `form:"slug" validate:"omitempty,max=100,slug"`
}

// ValidateNote checks a submitted note. An empty slug is derived from the
// title and written back into the form data. editingID is the note being
// edited, or 0 for a new note. The error is only set when the uniqueness
// lookup itself failed.
func ValidateNote(data map[string]string, slugs SlugChecker, editingID uint) (*Form, error) {
	f := New(data)

	if data["slug"] == "" && data["title"] != "" {
		data["slug"] = slugify.MakeMax(data["title"], SlugMaxLength)
		if data["slug"] == "" {
			f.AddError("slug", RequiredMessage)
		}
	}

	validateStruct(f, NoteInput{
		Title: data["title"],
		Text:  data["text"],
		Slug:  data["slug"],
	})

	if data["slug"] == "" || f.HasError("slug") {
		return f, nil
	}

	taken, err := slugs.SlugExistsExceptID(data["slug"], editingID)
	if err != nil {
		return f, err
	}
	if taken {
		f.AddError("slug", DuplicateSlugMessage(data["slug"]))
	}
	return f, nil
}

func DuplicateSlugMessage(slug string) string {
	return slug + SlugWarning
}
