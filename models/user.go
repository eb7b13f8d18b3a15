package models

import (
	"time"
)

// Roles stored on the user row. The first registered user becomes the
// administrator; everyone after that is a regular user.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User model
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	HashedPassword []byte    `gorm:"not null" json:"-"`
	Role           string    `gorm:"size:20;not null;default:USER" json:"role"`
	Accounts       []Account `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
