package authapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmotors/api/internal/models"
)

func TestHandleRegister_Success(t *testing.T) {
	_, db, router := setupTestHandler(t)

	rec := postJSON(t, router, "/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["accessToken"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, models.RoleClient, user["role"])

	// Refresh token travels as an HTTP-only cookie.
	cookie := refreshCookie(t, rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	// The user actually exists.
	var stored models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&stored).Error)
	assert.Equal(t, models.RoleClient, stored.Role)
	assert.NotEqual(t, "secret1", stored.HashedPassword)
}

func TestHandleRegister_DuplicateEmail(t *testing.T) {
	_, _, router := setupTestHandler(t)

	rec := postJSON(t, router, "/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, router, "/auth/register", map[string]string{
		"email":    "a@x.com",
		"password": "other12",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already in use")
}

func TestHandleRegister_BadRequests(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]string
		expectedBody string
	}{
		{
			name:         "Missing email",
			body:         map[string]string{"password": "secret1"},
			expectedBody: "required",
		},
		{
			name:         "Missing password",
			body:         map[string]string{"email": "a@x.com"},
			expectedBody: "required",
		},
		{
			name:         "Password too short",
			body:         map[string]string{"email": "a@x.com", "password": "abc"},
			expectedBody: "at least 6 characters",
		},
		{
			name:         "Invalid email format",
			body:         map[string]string{"email": "not-an-email", "password": "secret1"},
			expectedBody: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, router := setupTestHandler(t)

			rec := postJSON(t, router, "/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}
