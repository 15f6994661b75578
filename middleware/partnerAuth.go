package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ratecraft/utils"
)

// PartnerAuthMiddleware guards partner analytics and audit endpoints with a
// signed bearer token. The validated partner ID lands in the context.
func PartnerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		partnerID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired partner token"})
			return
		}

		c.Set("partnerID", partnerID)
		c.Next()
	}
}
