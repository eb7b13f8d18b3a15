package main

import (
	"fmt"
	"strings"

	"github.com/sofiahutsulo/finance-server/models"

	"golang.org/x/crypto/bcrypt"
)

// RegisterUser validates the registration fields, hashes the password and
// creates the user. The very first registered user becomes the administrator.
func RegisterUser(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return models.User{}, fmt.Errorf("name required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return models.User{}, fmt.Errorf("valid email required")
	}
	if len(password) < 6 { // basic password policy
		return models.User{}, fmt.Errorf("password too short (min 6)")
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return models.User{}, fmt.Errorf("user already exists")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	role := models.RoleUser
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		role = models.RoleAdmin
	}
	user := models.User{Name: name, Email: email, HashedPassword: hashedPassword, Role: role}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return models.User{}, fmt.Errorf("user already exists")
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate looks a user up by email and verifies the password. The error
// never reveals which of the two checks failed.
func Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
