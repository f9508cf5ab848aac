package repository

import (
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/models"
)

// newsRepository implements the NewsRepository interface
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository instance
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

// Create creates a new news article in the database
func (r *newsRepository) Create(news *models.News) error {
	return r.db.Omit("Comments").Create(news).Error
}

// GetByID retrieves a news article with its comments, oldest first.
func (r *newsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created ASC, id ASC")
		}).
		Preload("Comments.Author").
		First(&news, id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// GetPage retrieves news articles newest first
func (r *newsRepository) GetPage(offset, limit int) ([]models.News, error) {
	var news []models.News
	err := r.db.Order("date DESC, id DESC").
		Offset(offset).Limit(limit).Find(&news).Error
	return news, err
}

// Delete removes a news article together with its comments
func (r *newsRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.News{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Count returns the total number of news articles
func (r *newsRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.News{}).Count(&count).Error
	return count, err
}
