package authapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mmotors/api/internal/auth"
)

type handleLoginParams struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) handleLogin(c *gin.Context) {
	params := &handleLoginParams{}

	if err := c.ShouldBindJSON(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	if h.loginAttempts.Failures(params.Email) >= h.config.maxLoginFailures() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed attempts, try again later"})
		return
	}

	creds, err := h.manager.Login(&auth.LoginRequest{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.loginAttempts.RecordFailure(params.Email)
			// Same message whether the user exists or not.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		internalError(c, err, "Failed to login user")
		return
	}

	h.loginAttempts.Reset(params.Email)
	h.setRefreshCookie(c, creds.RefreshToken)

	c.JSON(http.StatusOK, gin.H{
		"user":        creds.User,
		"accessToken": creds.AccessToken,
	})
}
