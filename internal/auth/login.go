package auth

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mmotors/api/internal/storage"
)

type LoginRequest struct {
	Email    string
	Password string
}

// Login verifies the password against the stored hash and issues a new
// access/refresh token pair. "No such user" and "wrong password" return
// the same ErrInvalidCredentials. Each login mints an additional refresh
// token record; tokens issued to other devices stay valid.
func (m *Manager) Login(req *LoginRequest) (*Credentials, error) {
	user, err := storage.GetUserByEmail(m.db, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.CheckPassword(req.Password) {
		return nil, ErrInvalidCredentials
	}

	return m.issueCredentials(user)
}
