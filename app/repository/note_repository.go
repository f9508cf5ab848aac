package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ManuelReschke/NewsNotes/app/models"
)

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts the note. A taken slug surfaces as gorm.ErrDuplicatedKey.
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Omit(clause.Associations).Create(note).Error
}

func (r *noteRepository) GetBySlug(slug string) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("slug = ?", slug).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// GetBySlugForAuthor returns gorm.ErrRecordNotFound for other users' notes.
func (r *noteRepository) GetBySlugForAuthor(slug string, authorID uint) (*models.Note, error) {
	var note models.Note
	err := r.db.Where("slug = ? AND author_id = ?", slug, authorID).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *noteRepository) ListByAuthor(authorID uint) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.Where("author_id = ?", authorID).Order("id ASC").Find(&notes).Error
	return notes, err
}

// Update saves title, text and slug. The author never changes.
func (r *noteRepository) Update(note *models.Note) error {
	return r.db.Model(&models.Note{}).Where("id = ?", note.ID).
		Select("title", "text", "slug").
		Updates(map[string]interface{}{
			"title": note.Title,
			"text":  note.Text,
			"slug":  note.Slug,
		}).Error
}

func (r *noteRepository) Delete(note *models.Note) error {
	return r.db.Delete(&models.Note{}, note.ID).Error
}

// SlugExistsExceptID checks if a slug is taken by a note other than id
func (r *noteRepository) SlugExistsExceptID(slug string, id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Where("slug = ? AND id != ?", slug, id).Count(&count).Error
	return count > 0, err
}

func (r *noteRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Note{}).Count(&count).Error
	return count, err
}
