package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRefreshTokenMatches(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("opaque-secret"), bcrypt.MinCost)
	require.NoError(t, err)

	token := &RefreshToken{TokenHash: string(hash)}
	assert.True(t, token.Matches("opaque-secret"))
	assert.False(t, token.Matches("other-secret"))
}

func TestRefreshTokenExpired(t *testing.T) {
	now := time.Now()

	token := &RefreshToken{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, token.Expired(now))

	token.ExpiresAt = now.Add(-time.Minute)
	assert.True(t, token.Expired(now))

	// Expiry must be strictly in the future to be valid.
	token.ExpiresAt = now
	assert.True(t, token.Expired(now))
}
