package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlog "gorm.io/gorm/logger"

	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/internal/models"
)

func setupTestDB(t *testing.T) *gormw.DB {
	t.Helper()

	db, err := gormw.Open(&gormw.Config{
		LogLevel: gormlog.Silent,
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	return db
}

func TestListActiveRefreshTokens(t *testing.T) {
	db := setupTestDB(t)

	user := &models.User{Email: "a@x.com", Role: models.RoleClient}
	require.NoError(t, CreateUser(db, user))

	now := time.Now()
	require.NoError(t, AddRefreshToken(db, &models.RefreshToken{
		TokenHash: "live",
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, AddRefreshToken(db, &models.RefreshToken{
		TokenHash: "expired",
		UserID:    user.ID,
		ExpiresAt: now.Add(-time.Hour),
	}))

	tokens, err := ListActiveRefreshTokens(db, now)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "live", tokens[0].TokenHash)
	// Owning user comes preloaded.
	assert.Equal(t, "a@x.com", tokens[0].User.Email)

	n, err := CountActiveRefreshTokens(db, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCountUsers(t *testing.T) {
	db := setupTestDB(t)

	n, err := CountUsers(db)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, CreateUser(db, &models.User{Email: "a@x.com"}))
	require.NoError(t, CreateUser(db, &models.User{Email: "b@x.com"}))

	n, err = CountUsers(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, CreateUser(db, &models.User{Email: "a@x.com"}))

	err := CreateUser(db, &models.User{Email: "a@x.com"})
	assert.Error(t, err)
}
