package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// News is a published article. News is seeded by the publishing command, not
// through the web applications.
type News struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Title    string    `gorm:"type:varchar(50);not null" json:"title" validate:"required,max=50"`
	Text     string    `gorm:"type:text;not null" json:"text" validate:"required"`
	Date     time.Time `gorm:"index;precision:6" json:"date"`
	Comments []Comment `gorm:"foreignKey:NewsID;constraint:OnDelete:CASCADE" json:"comments"`
}

// TableName specifies the table name for the News model
func (News) TableName() string {
	return "news"
}

func (n *News) Validate() error {
	return validator.New().Struct(n)
}

// BeforeCreate defaults the publication date to the creation time.
func (n *News) BeforeCreate(tx *gorm.DB) error {
	if n.Date.IsZero() {
		n.Date = time.Now().UTC()
	}
	return nil
}
