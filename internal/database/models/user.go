package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. The password column holds only the
// bcrypt hash and is never serialized in responses.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
