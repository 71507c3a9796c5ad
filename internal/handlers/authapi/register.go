package authapi

import (
	"errors"
	"net/http"

	"github.com/badoux/checkmail"
	"github.com/gin-gonic/gin"

	"github.com/mmotors/api/internal/auth"
)

type handleRegisterParams struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

func (h *Handler) handleRegister(c *gin.Context) {
	params := &handleRegisterParams{}

	if err := c.ShouldBindJSON(params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and a password of at least 6 characters are required"})
		return
	}

	if err := checkmail.ValidateFormat(params.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	creds, err := h.manager.Register(&auth.RegisterRequest{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
			return
		}
		internalError(c, err, "Failed to register user")
		return
	}

	h.setRefreshCookie(c, creds.RefreshToken)

	c.JSON(http.StatusCreated, gin.H{
		"user":        creds.User,
		"accessToken": creds.AccessToken,
	})
}
