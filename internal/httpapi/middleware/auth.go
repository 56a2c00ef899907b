package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bookhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks the Authorization header, validates the token and resolves the
// encoded user against the credential store before the handler runs.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Token expired."})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. Invalid token."})
			}
			c.Abort()
			return
		}

		// A valid token may reference a user that no longer exists
		user, err := authService.ResolveUser(c.Request.Context(), claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Access denied. User not found."})
			c.Abort()
			return
		}

		// Set user info in context for handlers to use
		c.Set("userID", user.ID)
		c.Set("user", user)

		c.Next()
	}
}
