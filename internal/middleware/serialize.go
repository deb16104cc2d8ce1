package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
)

// Serialize runs one request at a time while holding lock. The store session
// behind the API allows no overlapping operations.
func Serialize(lock sync.Locker) gin.HandlerFunc {
	return func(c *gin.Context) {
		lock.Lock()
		defer lock.Unlock()
		c.Next()
	}
}
