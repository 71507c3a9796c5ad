package authapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmotors/api/internal/handlers/middleware"
	"github.com/mmotors/api/internal/storage"
)

func (h *Handler) handleMe(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	user, err := storage.GetUserByID(h.db, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Token subject no longer exists.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		internalError(c, err, "Failed to load user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Public()})
}
