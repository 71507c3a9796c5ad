package authapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmotors/api/internal/auth"
)

type handleRefreshParams struct {
	RefreshToken string `json:"refreshToken"`
}

// handleRefresh reads the refresh plaintext from the cookie, falling back
// to the JSON body for non-browser clients, and exchanges it for a new
// access token.
func (h *Handler) handleRefresh(c *gin.Context) {
	plaintext, _ := c.Cookie(refreshTokenCookie)
	if plaintext == "" {
		params := &handleRefreshParams{}
		if err := c.ShouldBindJSON(params); err == nil {
			plaintext = params.RefreshToken
		}
	}

	token, err := h.manager.Refresh(plaintext)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingRefreshToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token not found"})
		case errors.Is(err, auth.ErrInvalidRefreshToken):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		default:
			internalError(c, err, "Failed to refresh access token")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken": token.Token,
		"expiresIn":   token.ExpiresIn,
	})
}

// handleLogout clears the refresh cookie. The stored refresh-token record
// stays in place until it expires and the cleaner removes it.
func (h *Handler) handleLogout(c *gin.Context) {
	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
