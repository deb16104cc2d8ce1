package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the session user's ID in the Gin context.
// Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// SessionUser tags every request with the ID of the session's user, both in
// the Gin context and on the request-scoped logger.
func SessionUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(userIDKey), userID)

		ctx := c.Request.Context()
		logger := GetLoggerFromCtx(ctx).With(slog.Int64("user_id", userID))
		ctx = context.WithValue(ctx, userIDKey, userID)
		c.Request = c.Request.WithContext(WithLogger(ctx, logger))

		c.Next()
	}
}

// GetUserIDFromContext retrieves the session user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		if id, ok := c.Request.Context().Value(userIDKey).(int64); ok {
			return id, true
		}
		return 0, false
	}

	userID, ok := userIDVal.(int64)
	return userID, ok
}
