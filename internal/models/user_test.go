package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheckPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	// The hash is never the plaintext.
	assert.NotEqual(t, "secret1", string(hashed))

	u := &User{Email: "a@x.com", HashedPassword: string(hashed)}
	assert.True(t, u.CheckPassword("secret1"))
	assert.False(t, u.CheckPassword("secret2"))
	assert.False(t, u.CheckPassword(""))
}

func TestPublic(t *testing.T) {
	u := &User{Email: "a@x.com", HashedPassword: "hash", Role: RoleClient}
	u.ID = 7

	p := u.Public()
	assert.Equal(t, uint(7), p.ID)
	assert.Equal(t, "a@x.com", p.Email)
	assert.Equal(t, RoleClient, p.Role)
}
