package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"civicdesk/internal/infrastructure/ratelimit"
	"civicdesk/internal/shared/logger"
	"civicdesk/internal/shared/utils"
)

// SubmitRateLimit throttles complaint submission per client IP. A nil
// limiter disables throttling entirely.
func SubmitRateLimit(limiter ratelimit.RateLimiter, perMinute int, window time.Duration, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || perMinute <= 0 {
			c.Next()
			return
		}

		allowed, err := limiter.Allow("submit:"+c.ClientIP(), ratelimit.RateLimitConfig{
			RequestsPerMinute: perMinute,
			Window:            window,
		})
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
