package middleware

import (
	"strings"

	"github.com/devfolio/core/internal/pkg/jwt"
	"github.com/devfolio/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyAdminID  = "admin_id"
	ContextKeyUsername = "admin_username"
	ContextKeyRole     = "admin_role"
)

// Auth gates every mutating route. It extracts the bearer token, verifies
// signature and expiry, and short-circuits with a uniform 401 before any
// persistence or storage work. On success the verified identity is placed in
// the request context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := jwt.Parse(extractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyAdminID, claims.Subject)
		c.Set(ContextKeyUsername, claims.Username)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// CurrentAdminID returns the authenticated admin id, or "" outside the gate.
func CurrentAdminID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyAdminID)
	id, _ := v.(string)
	return id
}

func extractToken(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
