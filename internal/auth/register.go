package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mmotors/api/internal/models"
	"github.com/mmotors/api/internal/storage"
)

type RegisterRequest struct {
	Email    string
	Password string
}

// Register creates a user with the least-privileged role and issues the
// first access/refresh token pair. A taken email fails with
// ErrDuplicateEmail.
func (m *Manager) Register(req *RegisterRequest) (*Credentials, error) {
	_, err := storage.GetUserByEmail(m.db, req.Email)
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), m.config.bcryptCost())
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          req.Email,
		HashedPassword: string(hashed),
		Role:           models.RoleClient,
	}

	if err := storage.CreateUser(m.db, user); err != nil {
		// Two concurrent registrations can both pass the lookup above;
		// the unique index decides the loser.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return m.issueCredentials(user)
}
