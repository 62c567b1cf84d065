package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-library-backend/internal/shared/response"
	"personal-library-backend/pkg/token"
)

// ContextReaderID is the gin context key carrying the authenticated reader id.
const ContextReaderID = "readerID"

// Auth verifies the bearer access token and puts the reader id on the
// request context. Failures are deliberately information-poor.
func Auth(manager *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextReaderID, claims.ReaderID)
		c.Next()
	}
}
