package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"homestead-voice-assistant/pkg/response"
)

// RateLimit throttles requests per client IP with a token bucket. Limiters
// are kept in an LRU cache so long-gone clients do not leak memory.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.rateLimit.RPS <= 0 {
			c.Next()
			return
		}

		ip := c.ClientIP()
		limiter, ok := m.limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(m.rateLimit.RPS), m.rateLimit.Burst)
			m.limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: throttled client %s", ip)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests",
			})
			return
		}

		c.Next()
	}
}
