package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/orris-inc/helpdesk/internal/infrastructure/ratelimit"
	"github.com/orris-inc/helpdesk/internal/shared/errors"
	"github.com/orris-inc/helpdesk/internal/shared/logger"
	"github.com/orris-inc/helpdesk/internal/shared/utils"
)

// RateLimit limits requests per client IP. scope separates the counters
// of different route groups sharing one limiter.
func RateLimit(limiter ratelimit.RateLimiter, scope string, limit ratelimit.Limit, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit.Disabled() {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key, limit)
		if err != nil {
			// Fail open.
			log.Warnw("rate limiter unavailable", "error", err, "scope", scope)
			c.Next()
			return
		}
		if !allowed {
			log.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			utils.AbortWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			return
		}

		c.Next()
	}
}
