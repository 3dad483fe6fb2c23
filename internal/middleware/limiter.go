package middleware

import (
	"github.com/takvimhub/event-calendar-service/pkg/app"
	"github.com/takvimhub/event-calendar-service/pkg/code"
	"github.com/takvimhub/event-calendar-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimiter rejects requests whose route bucket is drained. The login
// route carries a tight bucket since the digest check is the only brake
// on guessing.
func RateLimiter(l limiter.LimiterIface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := l.Key(c)
		if bucket, ok := l.GetBucket(key); ok {
			count := bucket.TakeAvailable(1)
			if count == 0 {
				response := app.NewResponse(c)
				response.ToResponse(code.ErrorTooManyRequests)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
