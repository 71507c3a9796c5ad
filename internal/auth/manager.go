// Package auth implements the credential and session core: registration,
// password login, access-token issuance and verification, and refresh-token
// validation against stored hashes.
package auth

import (
	"time"

	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/internal/models"
	"github.com/mmotors/api/internal/storage"
)

var (
	logger = log.With().Str("component", "auth").Logger()
)

type Manager struct {
	config *Config
	db     *gormw.DB

	privateKey jwk.Key
	publicKey  jwk.Key
}

func NewManager(config *Config, db *gormw.DB) *Manager {
	priv, err := jwk.ParseKey([]byte(config.PrivateKeyPEM), jwk.WithPEM(true))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse private key")
	}

	pub, err := priv.PublicKey()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to generate public key")
	}

	return &Manager{
		config:     config,
		db:         db,
		privateKey: priv,
		publicKey:  pub,
	}
}

// PublicKey returns the verification key, e.g. for a JWKS endpoint.
func (m *Manager) PublicKey() jwk.Key {
	return m.publicKey
}

// Credentials is what register and login hand back to the boundary. The
// refresh token is the plaintext secret; this is the only time it exists
// outside the client.
type Credentials struct {
	User         *models.PublicUser
	AccessToken  string
	RefreshToken string
}

// issueCredentials mints an access token and a fresh refresh token for the
// user, persisting only the refresh secret's hash.
func (m *Manager) issueCredentials(user *models.User) (*Credentials, error) {
	accessToken, err := m.genAccessToken(user)
	if err != nil {
		return nil, err
	}

	secret, err := newRefreshSecret()
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), m.config.bcryptCost())
	if err != nil {
		return nil, err
	}

	if err := storage.AddRefreshToken(m.db, &models.RefreshToken{
		TokenHash: string(hash),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(m.config.refreshTokenTTL()),
	}); err != nil {
		return nil, err
	}

	return &Credentials{
		User:         user.Public(),
		AccessToken:  accessToken,
		RefreshToken: secret,
	}, nil
}
