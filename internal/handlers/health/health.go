// Package health exposes liveness and status endpoints.
package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/internal/handlers/middleware"
	"github.com/mmotors/api/internal/models"
	"github.com/mmotors/api/internal/storage"
)

var (
	logger = log.With().Str("component", "health").Logger()
)

type Handler struct {
	db    *gormw.DB
	start time.Time
}

func NewHandler(db *gormw.DB) *Handler {
	return &Handler{
		db:    db,
		start: time.Now(),
	}
}

// RegisterHandlers wires /health for load balancers and /status for
// operators. Status carries counts, so it is admin only.
func (h *Handler) RegisterHandlers(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	rg.GET("/health", h.handleHealth)
	rg.GET("/status", authn, middleware.RequireRoles(models.RoleAdmin), h.handleStatus)
}

func (h *Handler) handleHealth(c *gin.Context) {
	if err := h.db.Exec("SELECT 1").Error; err != nil {
		logger.Error().Err(err).Msg("Database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unhealthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"error":     "Database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.start).Seconds(),
	})
}

func (h *Handler) handleStatus(c *gin.Context) {
	users, err := storage.CountUsers(h.db)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count users")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to retrieve status"})
		return
	}

	sessions, err := storage.CountActiveRefreshTokens(h.db, time.Now())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to count active sessions")
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "Failed to retrieve status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "operational",
		"metrics": gin.H{
			"users":          users,
			"activeSessions": sessions,
			"uptime":         time.Since(h.start).Seconds(),
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
