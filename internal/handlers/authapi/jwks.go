package authapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleJWKS returns the JSON Web Key Set for access-token verification.
func (h *Handler) handleJWKS(c *gin.Context) {
	jwks := map[string]interface{}{
		"keys": []interface{}{h.manager.PublicKey()},
	}
	c.JSON(http.StatusOK, jwks)
}
