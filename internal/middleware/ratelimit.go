package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bistpulse/internal/domain/dto"
)

// visitor is the fixed-window counter of one client IP.
type visitor struct {
	windowStart time.Time
	count       int
}

// rateLimiter is an in-memory fixed-window limiter keyed by client IP.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// allow records one request from ip and reports whether it is within the limit.
func (rl *rateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok || now.Sub(v.windowStart) >= rl.window {
		rl.visitors[ip] = &visitor{windowStart: now, count: 1}
		rl.sweep(now)
		return true
	}
	v.count++
	return v.count <= rl.limit
}

// sweep drops visitors whose window has expired. Callers hold mu.
func (rl *rateLimiter) sweep(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.windowStart) >= rl.window {
			delete(rl.visitors, ip)
		}
	}
}

// RateLimiter limits every client IP to perMinute requests per minute.
//
// Behavior:
//   - A perMinute of 0 or less disables limiting.
//   - When the limit is exceeded the request is answered with
//     429 Too Many Requests and an ErrorResponse body.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter(120))
//
// State is process-local; multiple instances each keep their own counters.
func RateLimiter(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return rateLimit(newRateLimiter(perMinute, time.Minute))
}

func rateLimit(rl *rateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
