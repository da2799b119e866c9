package middleware

import (
	"net/http"
	"strings"

	"swiftdrop/utils"

	"github.com/gin-gonic/gin"
)

// AccountContextKey is where the acting account id lands in the gin context.
const AccountContextKey = "accountID"

// AccountAuthMiddleware verifies the bearer token and stamps the acting
// account id onto the request context. Authentication itself is owned by the
// identity provider; this only validates its tokens.
func AccountAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, err := utils.ExtractAccountIDFromToken(tokenString)
		if err != nil || accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(AccountContextKey, accountID)
		c.Next()
	}
}
