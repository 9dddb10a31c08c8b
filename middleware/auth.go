package middleware

import (
	"net/http"
	"strings"

	"github.com/bilalhossainshah/ecommerce-api/auth"
	"github.com/gin-gonic/gin"
)

// ValidateToken checks the Authorization header for a Bearer token and puts
// the asserted identity on the context as "user_id" and "email".
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	tokenData, err := auth.VerifyToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set("user_id", tokenData.UserID)
	c.Set("email", tokenData.Email)
	c.Next()
}
