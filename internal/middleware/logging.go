package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contextKey is the type of the keys this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// NetworkUnavailableHeader marks a response whose store operation lost its connection.
const NetworkUnavailableHeader = "X-Network-Unavailable"

// StructuredLoggingMiddleware gives every request a logger tagged with a fresh
// request ID and logs one completion line. The line also records the session
// user and whether the store was reachable, so a lost connection shows up in
// the log even though the client only sees an empty 503.
func StructuredLoggingMiddleware(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		c.Header("X-Request-ID", requestID)
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), requestLogger))

		c.Next()

		attrs := []any{
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if userID, ok := GetUserIDFromContext(c); ok {
			attrs = append(attrs, slog.Int64("user_id", userID))
		}
		if c.Writer.Header().Get(NetworkUnavailableHeader) == "true" {
			requestLogger.Warn("Request completed without store", attrs...)
			return
		}
		requestLogger.Info("Request completed", attrs...)
	}
}
