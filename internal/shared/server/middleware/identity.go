package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const userIDKey = "userId"

// Identity resolves the caller's identity. The service is anonymous: clients
// send a stable X-Guest-Id header, and callers without one get a fresh guest
// ID echoed back so they can keep it.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id"))
		if guestID == "" {
			guestID = uuid.NewString()
		}
		c.Set(userIDKey, "guest:"+guestID)
		c.Writer.Header().Set("X-Guest-Id", guestID)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the Identity middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}
