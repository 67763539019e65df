package middleware

import (
	"net/http"
	"strings"

	"github.com/LovationAdmin/expense-api/models"
	"github.com/LovationAdmin/expense-api/utils"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey = "user_id"
	emailKey  = "user_email"
)

// AuthMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the token's user in the gin context.
func AuthMiddleware(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization token required",
				"code":  models.CodeUnauthorized,
			})
			return
		}

		claims, err := tokens.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
				"code":  models.CodeUnauthorized,
			})
			return
		}

		SetUser(c, claims.UserID, claims.Email)
		c.Next()
	}
}

func SetUser(c *gin.Context, userID, email string) {
	c.Set(userIDKey, userID)
	c.Set(emailKey, email)
}

// GetUserID returns the authenticated user, or "" outside AuthMiddleware.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(emailKey)
}
