package authapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const refreshTokenCookie = "refresh_token"

// setRefreshCookie hands the refresh plaintext to the browser as an
// HTTP-only cookie; it is never persisted server-side.
func (h *Handler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, token,
		int(h.config.Auth.RefreshTokenTTLSeconds()), "/", "", h.config.CookieSecure, true)
}

func (h *Handler) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", h.config.CookieSecure, true)
}
