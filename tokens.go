package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/sofiahutsulo/finance-server/models"

	"github.com/golang-jwt/jwt/v5"
)

// Session lifetimes. Register and login hand out a long-lived access token so
// the mobile client survives restarts without re-login; a refresh exchange
// issues a short-lived one and rotates the refresh credential.
const (
	loginAccessTTL     = 7 * 24 * time.Hour
	refreshedAccessTTL = 15 * time.Minute
	refreshTokenTTL    = 30 * 24 * time.Hour
)

func issueAccessToken(user models.User, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(jwtSecret)
}

// hashToken maps a raw refresh token to its stored form. Hashing keeps a
// leaked refresh_tokens table from yielding usable credentials.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// issueRefreshToken mints a random refresh token for the user, persists its
// hash with the standard expiry and returns the raw value for the client.
func issueRefreshToken(userID uint) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	raw := hex.EncodeToString(buf)
	record := models.RefreshToken{
		UserID:    userID,
		Hash:      hashToken(raw),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := db.Create(&record).Error; err != nil {
		return "", err
	}
	return raw, nil
}

// lookupRefreshToken resolves a raw refresh token to its stored record.
// Callers still have to check Usable before honoring it.
func lookupRefreshToken(raw string) (*models.RefreshToken, error) {
	var record models.RefreshToken
	if err := db.Where("hash = ?", hashToken(raw)).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// revokeRefreshToken timestamps the record; a revoked token can never be
// exchanged again.
func revokeRefreshToken(id uint) error {
	return db.Model(&models.RefreshToken{}).Where("id = ?", id).
		Update("revoked_at", time.Now()).Error
}
