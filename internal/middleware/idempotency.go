package middleware

import (
	"fmt"
	"net/http"
	"time"

	"go-empms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency guards POST endpoints against duplicate submits. While a
// request holding an Idempotency-Key is in flight, a second request with
// the same key is rejected with 409. The lock expires on its own if the
// server dies mid-request. No response is cached; replays after the first
// request finishes hit the handler normally.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		lockKey := fmt.Sprintf("idemp:%s:%s:lock", c.FullPath(), idempKey)

		acquired, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being down must not block writes.
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, "Conflict", map[string]string{
				"error": "A request with this Idempotency-Key is already being processed",
			})
			c.Abort()
			return
		}

		defer rdb.Del(c.Request.Context(), lockKey)
		c.Next()
	}
}
