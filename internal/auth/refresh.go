package auth

import (
	"time"

	"github.com/mmotors/api/internal/storage"
)

type AccessToken struct {
	Token     string
	ExpiresIn int // seconds
}

// Refresh exchanges a refresh-token plaintext for a new access token.
// The stored hash cannot be looked up by the secret's value, so every
// unexpired record is bcrypt-compared in turn, short-circuiting on the
// first match. Linear in live sessions; fine at this scale.
//
// The matched record is neither rotated nor revoked, matching the
// observed behavior this service reimplements.
func (m *Manager) Refresh(plaintext string) (*AccessToken, error) {
	if plaintext == "" {
		return nil, ErrMissingRefreshToken
	}

	tokens, err := storage.ListActiveRefreshTokens(m.db, time.Now())
	if err != nil {
		return nil, err
	}

	for i := range tokens {
		if !tokens[i].Matches(plaintext) {
			continue
		}

		signed, err := m.genAccessToken(&tokens[i].User)
		if err != nil {
			return nil, err
		}

		return &AccessToken{
			Token:     signed,
			ExpiresIn: int(m.config.accessTokenTTL().Seconds()),
		}, nil
	}

	return nil, ErrInvalidRefreshToken
}
