// Package middleware provides gin middlewares shared by the API handlers.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-set/v3"

	"github.com/mmotors/api/internal/auth"
)

const keyClaims = "auth_claims"

// RequireAuth verifies the bearer access token and stores its claims in the
// request context. Requests without a verifiable token are rejected 401.
func RequireAuth(m *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		claims, err := m.VerifyAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(keyClaims, claims)
		c.Next()
	}
}

// RequireRoles rejects authenticated callers whose role is not in the
// allow-list. Flat set membership, no hierarchy.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := set.From(roles)
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		if !allowed.Contains(claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}

// Claims returns the verified claims RequireAuth stored, nil if absent.
func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(keyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
