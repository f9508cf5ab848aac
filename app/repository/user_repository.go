package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername retrieves a user by their exact username
func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UsernameExists(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// UpdateLastLogin stores the time of the latest successful login
func (r *userRepository) UpdateLastLogin(id uint, at time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("last_login_at", at).Error
}

// FindOrCreateByProvider returns the user linked to an external identity,
// creating both the user and the link on first login. The username gets a
// numeric suffix when it is already taken.
func (r *userRepository) FindOrCreateByProvider(provider, providerUserID, username string) (*models.User, error) {
	var account models.ProviderAccount
	err := r.db.Preload("User").
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&account).Error
	if err == nil {
		return &account.User, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user *models.User
	err = r.db.Transaction(func(tx *gorm.DB) error {
		name, err := freeUsername(tx, username)
		if err != nil {
			return err
		}

		// No password login for provider users until they set one.
		u, err := models.CreateUser(name, uuid.NewString())
		if err != nil {
			return err
		}
		if err := tx.Create(u).Error; err != nil {
			return err
		}

		link := &models.ProviderAccount{
			UserID:         u.ID,
			Provider:       provider,
			ProviderUserID: providerUserID,
		}
		if err := tx.Omit("User").Create(link).Error; err != nil {
			return err
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("link %s account: %w", provider, err)
	}
	return user, nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func freeUsername(tx *gorm.DB, base string) (string, error) {
	if base == "" {
		base = "user"
	}
	name := base
	for i := 1; ; i++ {
		var count int64
		if err := tx.Model(&models.User{}).Where("username = ?", name).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return name, nil
		}
		name = fmt.Sprintf("%s%d", base, i)
	}
}
