package authapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalError logs the failure and answers with a generic body so store
// or signer details never reach the client.
func internalError(c *gin.Context, err error, msg string) {
	logger.Error().Err(err).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
