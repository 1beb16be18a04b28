package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	domainerr "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
)

// limiterIdleTTL is how long an untouched bucket is kept. A bucket refills
// completely within a minute, so dropping it afterwards loses no state.
const limiterIdleTTL = 2 * time.Minute

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	limiters *cache.Cache
	limit    rate.Limit
	burst    int
}

// NewRateLimiter allows perMinute requests per client, with bursts of the same size
func NewRateLimiter(perMinute int) *RateLimiter {
	return newRateLimiter(perMinute, limiterIdleTTL, limiterIdleTTL)
}

func newRateLimiter(perMinute int, idleTTL, cleanupInterval time.Duration) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	return &RateLimiter{
		limiters: cache.New(idleTTL, cleanupInterval),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}
}

func (l *RateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	// every access pushes the expiry back
	l.limiters.SetDefault(key, limiter)
	return limiter.(*rate.Limiter)
}

// Allow reports whether the client may make another request now
func (l *RateLimiter) Allow(key string) bool {
	return l.limiterFor(key).Allow()
}

// Clients returns the number of tracked client buckets
func (l *RateLimiter) Clients() int {
	return l.limiters.ItemCount()
}

// Middleware rejects clients that exceed the limit with 429
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			AbortWithError(c, domainerr.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
