package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"newsroom-backend/pkg/jwt"
)

// OptionalAuth extracts the caller's identity from a bearer token when one
// is present. Unlike a required-auth middleware it never aborts: comments
// can be posted anonymously, but an authenticated caller is recorded as
// the comment author.
func OptionalAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := manager.ValidateAccessToken(parts[1])
		if err != nil {
			// Invalid token falls through to anonymous
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)

		c.Next()
	}
}
