package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/models"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/clock"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	UsernameExists(username string) (bool, error)
	UpdateLastLogin(id uint, at time.Time) error
	FindOrCreateByProvider(provider, providerUserID, username string) (*models.User, error)
	Count() (int64, error)
}

// NewsRepository defines the interface for news-related operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	GetPage(offset, limit int) ([]models.News, error)
	Delete(id uint) error
	Count() (int64, error)
}

// CommentRepository defines the interface for comment-related operations.
// Lookups with a ForAuthor suffix return gorm.ErrRecordNotFound when the
// comment exists but belongs to somebody else.
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetByIDForAuthor(id, authorID uint) (*models.Comment, error)
	ListByNews(newsID uint) ([]models.Comment, error)
	UpdateText(comment *models.Comment, text string) error
	Delete(comment *models.Comment) error
	Count() (int64, error)
}

// NoteRepository defines the interface for note-related operations
type NoteRepository interface {
	Create(note *models.Note) error
	GetBySlug(slug string) (*models.Note, error)
	GetBySlugForAuthor(slug string, authorID uint) (*models.Note, error)
	ListByAuthor(authorID uint) ([]models.Note, error)
	Update(note *models.Note) error
	Delete(note *models.Note) error
	SlugExistsExceptID(slug string, id uint) (bool, error)
	Count() (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User    UserRepository
	News    NewsRepository
	Comment CommentRepository
	Note    NoteRepository
}

// NewRepositories creates a new instance of all repositories. Comments are
// stamped by clk.
func NewRepositories(db *gorm.DB, clk clock.Clock) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		News:    NewNewsRepository(db),
		Comment: NewCommentRepository(db, clk),
		Note:    NewNoteRepository(db),
	}
}
