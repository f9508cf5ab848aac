package models

import (
	"time"
)

// Comment belongs to one News item and one author. Comments of a news item
// are always read oldest first.
type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	NewsID   uint      `gorm:"index;not null" json:"news_id"`
	AuthorID uint      `gorm:"index;not null" json:"author_id"`
	Author   User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	Text     string    `gorm:"type:text;not null" json:"text" validate:"required"`
	Created  time.Time `gorm:"index;precision:6;not null" json:"created"`
}

// IsAuthoredBy reports whether userID wrote the comment.
func (c *Comment) IsAuthoredBy(userID uint) bool {
	return userID != 0 && c.AuthorID == userID
}
