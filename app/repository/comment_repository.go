package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/clock"
)

type commentRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewCommentRepository creates a comment repository. Every created comment is
// stamped by clk, so comments of one process never share a timestamp.
func NewCommentRepository(db *gorm.DB, clk clock.Clock) CommentRepository {
	return &commentRepository{db: db, clock: clk}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	comment.Created = r.clock.Now()
	return r.db.Omit(clause.Associations).Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetByIDForAuthor filters by author in the query itself.
func (r *commentRepository) GetByIDForAuthor(id, authorID uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("Author").
		Where("id = ? AND author_id = ?", id, authorID).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByNews(newsID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("news_id = ?", newsID).
		Order("created ASC, id ASC").
		Find(&comments).Error
	return comments, err
}

// UpdateText changes only the text. Author, news and creation time stay.
func (r *commentRepository) UpdateText(comment *models.Comment, text string) error {
	err := r.db.Model(&models.Comment{}).Where("id = ?", comment.ID).Update("text", text).Error
	if err != nil {
		return err
	}
	comment.Text = text
	return nil
}

func (r *commentRepository) Delete(comment *models.Comment) error {
	return r.db.Delete(&models.Comment{}, comment.ID).Error
}

func (r *commentRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Count(&count).Error
	return count, err
}
