package models

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a catalog entry. BookImage is nil until a cover image has
// been uploaded through the image relay.
type Book struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Author      string    `gorm:"not null" json:"author"`
	Description string    `gorm:"not null" json:"description"`
	BookImage   *string   `json:"bookImage,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (Book) TableName() string {
	return "books"
}
