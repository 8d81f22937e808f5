package server

import (
	"net/http"
	"sync"

	"furniture-booking/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; past it the map starts over
const maxTrackedClients = 10000

// RateLimiter keeps one token bucket per client address
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing r requests per second with the given burst per client
func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = l
	}
	return l
}

// Middleware answers 429 once a client exhausts its bucket
func (rl *RateLimiter) Middleware(c *gin.Context) {
	key := c.ClientIP()
	if !rl.limiter(key).Allow() {
		utils.Warn("rate limit exceeded", map[string]any{
			"client": key,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		utils.HTMLError(c, http.StatusTooManyRequests, "too many requests, please try again later")
		c.Abort()
		return
	}
	c.Next()
}
