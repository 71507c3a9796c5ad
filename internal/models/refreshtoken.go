package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// RefreshToken stores only the bcrypt hash of the opaque secret handed
// to the client. The plaintext leaves the server exactly once, at issuance.
type RefreshToken struct {
	ID        uint   `gorm:"primarykey"`
	TokenHash string
	UserID    uint `gorm:"index"` // with index, easy to find all refresh tokens of a user
	User      User
	CreatedAt time.Time
	ExpiresAt time.Time
}

func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

func (t *RefreshToken) Matches(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(t.TokenHash), []byte(plaintext)) == nil
}
