package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/mmotors/api/internal/models"
)

// refreshSecretBytes gives 256 bits of entropy, well above the 128-bit
// floor for an unguessable token.
const refreshSecretBytes = 32

// Claims is the decoded identity an access token proves.
type Claims struct {
	UserID uint
	Role   string
}

func (m *Manager) genAccessToken(user *models.User) (string, error) {
	token, err := jwt.NewBuilder().
		Issuer(m.config.Issuer).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(m.config.accessTokenTTL())).
		Subject(strconv.FormatUint(uint64(user.ID), 10)).
		Claim("role", user.Role).
		Build()

	if err != nil {
		return "", fmt.Errorf("failed to build access token claims: %v", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256(), m.privateKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %v", err)
	}

	return string(signed), nil
}

// VerifyAccessToken checks signature and expiry of a bearer token and
// returns its claims. Any failure maps to ErrUnauthenticated; the caller
// must treat the request as unauthenticated without detail.
func (m *Manager) VerifyAccessToken(raw string) (*Claims, error) {
	// Verify the token, this also check if the token is expired.
	verified, err := jwt.Parse([]byte(raw), jwt.WithKey(jwa.RS256(), m.publicKey))
	if err != nil {
		return nil, ErrUnauthenticated
	}

	iss, ok := verified.Issuer()
	if !ok || iss != m.config.Issuer {
		return nil, ErrUnauthenticated
	}

	sub, ok := verified.Subject()
	if !ok {
		return nil, ErrUnauthenticated
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	var role string
	if err := verified.Get("role", &role); err != nil {
		return nil, ErrUnauthenticated
	}

	return &Claims{
		UserID: uint(id),
		Role:   role,
	}, nil
}

func newRefreshSecret() (string, error) {
	b := make([]byte, refreshSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate refresh secret: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
