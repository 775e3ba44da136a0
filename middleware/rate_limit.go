package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/inkpost/inkpost/utils"
)

type ipBucket struct {
	limiter *rate.Limiter
	expires time.Time
}

// RateLimit applies a simple per-IP token bucket to the routes it wraps. Each
// instance owns its buckets, so wrapping two groups with different rates keeps
// their budgets separate.
func RateLimit(perMinute int) gin.HandlerFunc {
	limit := rate.Every(time.Minute / time.Duration(max(perMinute, 1)))
	burst := max(perMinute/2, 1)

	var (
		mu      sync.Mutex
		buckets = map[string]*ipBucket{}
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		for k, b := range buckets {
			if now.After(b.expires) {
				delete(buckets, k)
			}
		}

		b, ok := buckets[key]
		if !ok {
			b = &ipBucket{limiter: rate.NewLimiter(limit, burst)}
			buckets[key] = b
		}
		b.expires = now.Add(5 * time.Minute)
		return b.limiter
	}

	return func(ctx *gin.Context) {
		if !limiterFor(ctx.ClientIP()).Allow() {
			utils.Error(ctx, http.StatusTooManyRequests, "Too many requests, please try again later")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
