package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	mem "atchub/pkg/memcache"
	"atchub/pkg/utils"
)

// JWTAuthMiddleware authenticates the bearer token and rejects tokens revoked
// by logout. On success the caller's callsign and admin flag are placed on the
// request context.
func JWTAuthMiddleware(revoked mem.RevokedTokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if revoked.IsRevoked(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, "Session has ended")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("callsign", claims.Callsign)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("token", tokenString)
		c.Next()
	}
}

// AdminMiddleware denies privileged intents before they reach the store layer.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
