// Package authapi exposes the credential and session manager over HTTP:
// register, login, refresh, logout, me, and a JWKS endpoint for resource
// servers verifying access tokens.
package authapi

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mmotors/api/internal/auth"
	"github.com/mmotors/api/internal/gormw"
	"github.com/mmotors/api/internal/handlers/middleware"
	"github.com/mmotors/api/internal/storage"
)

var (
	logger = log.With().Str("component", "authapi").Logger()
)

const defaultMaxLoginFailures = 10

type Config struct {
	Auth auth.Config `yaml:"auth"`

	// CookieSecure marks the refresh cookie Secure, set it in production.
	CookieSecure bool `yaml:"cookie_secure"`

	// MaxLoginFailures per email in the throttle window, 10 if unset.
	MaxLoginFailures int `yaml:"max_login_failures"`
}

func (c *Config) Validate() {
	c.Auth.Validate()
}

func (c *Config) maxLoginFailures() uint {
	if c.MaxLoginFailures <= 0 {
		return defaultMaxLoginFailures
	}
	return uint(c.MaxLoginFailures)
}

type Handler struct {
	config  *Config
	db      *gormw.DB
	manager *auth.Manager

	loginAttempts *storage.LoginAttemptStorage
}

func NewHandler(config *Config, db *gormw.DB) *Handler {
	return &Handler{
		config:        config,
		db:            db,
		manager:       auth.NewManager(&config.Auth, db),
		loginAttempts: storage.NewLoginAttemptStorage(),
	}
}

// Manager exposes the credential core so other handler packages can share
// its token verification.
func (h *Handler) Manager() *auth.Manager {
	return h.manager
}

func (h *Handler) RegisterHandlers(rg *gin.RouterGroup) {
	authRoutes := rg.Group("/auth")
	{
		authRoutes.POST("/register", h.handleRegister)
		authRoutes.POST("/login", h.handleLogin)
		authRoutes.POST("/refresh-token", h.handleRefresh)
		authRoutes.POST("/logout", h.handleLogout)
		authRoutes.GET("/me", middleware.RequireAuth(h.manager), h.handleMe)

		// Resource servers verify access tokens against this key set.
		authRoutes.GET("/.well-known/jwks.json", h.handleJWKS)
	}
}
