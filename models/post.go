package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a blog entry. The category link is a weak reference: it is stored
// without an existence check and deleting a category leaves it dangling, so
// no foreign key constraint is created for it.
type Post struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Title      string    `gorm:"size:255;not null;uniqueIndex" json:"title"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	CategoryID *string   `gorm:"size:36;index" json:"category_id,omitempty"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category"`
	Author     string    `gorm:"size:255;not null;default:Anonymous" json:"author"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate assigns an opaque identity when none is provided.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
