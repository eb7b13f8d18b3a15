package models

import "time"

// RefreshToken is one issued session credential. Only the SHA-256 hash of the
// raw token is stored; the raw value exists solely in the client's hands.
// RevokedAt records rotation and logout, so a replayed token stays traceable.
type RefreshToken struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint       `gorm:"index;not null"`
	Hash      string     `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time  `gorm:"index;not null"`
	RevokedAt *time.Time `gorm:"index"`
}

// Usable reports whether the token can still be exchanged at instant now.
func (t RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
