package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles are a flat tier, no hierarchy between them.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
	RoleUser   = "user"
)

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex"`
	HashedPassword string
	Role           string
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)) == nil
}

// PublicUser is the subset of User safe to return to callers.
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
}
