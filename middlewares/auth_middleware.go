package middlewares

import (
	"net/http"
	"strings"

	"go-postgres-carbooks/utils"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token and puts user_id, email and role on the
// context. Role defaults to staff when the claim is missing.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		if id, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", uint(id))
		}
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		role, _ := claims["role"].(string)
		if role == "" {
			role = "staff"
		}
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Admin passes everything.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get("role")
		got, _ := current.(string)
		if got != role && got != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}
		c.Next()
	}
}
