package middleware

import (
	"net/http"
	"strings"

	"github.com/foodshare-app/foodshare_backend/models"
	"github.com/foodshare-app/foodshare_backend/utils"
	"github.com/gin-gonic/gin"
)

// JWTAuth validates the Authorization header and stores the caller's
// identity and role in the request context.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
			c.Abort()
			return
		}

		userID, role, err := utils.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// RequireRole rejects callers whose role claim does not match role.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.MustGet("userRole").(models.Role) != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			c.Abort()
			return
		}
		c.Next()
	}
}
