package middleware

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	pkgLog "homestead-voice-assistant/pkg/log"
)

// limiterCacheSize bounds the number of per-client limiters kept in memory.
const limiterCacheSize = 1024

// RateLimitConfig tunes the per-client token bucket.
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type Middleware struct {
	l         pkgLog.Logger
	rateLimit RateLimitConfig
	limiters  *lru.Cache[string, *rate.Limiter]
}

func New(l pkgLog.Logger, rl RateLimitConfig) Middleware {
	limiters, _ := lru.New[string, *rate.Limiter](limiterCacheSize)
	return Middleware{
		l:         l,
		rateLimit: rl,
		limiters:  limiters,
	}
}
