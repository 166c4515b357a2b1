package rest

import (
	"strings"

	"tasklist/internal/core/domain/exceptions"
	"tasklist/internal/core/ports"
	"tasklist/internal/mapper"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Authenticate resolves the bearer token to a user id or fails closed
// before any handler runs.
func Authenticate(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			status, body := mapper.Error(exceptions.ErrMissingToken)
			c.AbortWithStatusJSON(status, body)
			return
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			status, body := mapper.Error(exceptions.ErrInvalidToken)
			c.AbortWithStatusJSON(status, body)
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			status, body := mapper.Error(exceptions.ErrInvalidToken)
			c.AbortWithStatusJSON(status, body)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
