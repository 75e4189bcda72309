package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"mentesana/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware gates the operator endpoints behind the shared static
// token from configuration. The check lives at the service boundary, not in
// the frontend, so the listing endpoints are never reachable without it.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.AdminToken
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No autorizado."})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No autorizado."})
			return
		}
		provided := strings.TrimPrefix(authHeader, "Bearer ")

		if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No autorizado."})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
