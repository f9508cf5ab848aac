package models

// Note is a private note. Its slug is unique across all users and is the
// identifier used in URLs.
type Note struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"type:varchar(100);not null" json:"title" validate:"required,max=100"`
	Text     string `gorm:"type:text;not null" json:"text" validate:"required"`
	Slug     string `gorm:"uniqueIndex;type:varchar(100);not null" json:"slug" validate:"required,max=100"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
}

// IsAuthoredBy reports whether userID owns the note.
func (n *Note) IsAuthoredBy(userID uint) bool {
	return userID != 0 && n.AuthorID == userID
}
