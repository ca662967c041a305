package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jengzang/borough-records-go/pkg/response"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

// NewRateLimiter creates a limiter allowing perSecond requests with the given burst.
// Buckets unused for idle are dropped by Cleanup.
func NewRateLimiter(perSecond float64, burst int, idle time.Duration) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		idle:    idle,
		now:     time.Now,
	}
}

// Allow checks if a request from the given IP is allowed
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cl, ok := rl.clients[ip]
	if !ok {
		cl = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.lastSeen = now
	return cl.limiter.AllowN(now, 1)
}

// Cleanup removes idle clients and returns how many were removed
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	removed := 0
	for ip, cl := range rl.clients {
		if now.Sub(cl.lastSeen) >= rl.idle {
			delete(rl.clients, ip)
			removed++
		}
	}
	return removed
}

// StartCleanup runs Cleanup every interval until ctx is done
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.Cleanup()
			}
		}
	}()
}

// Len returns the number of tracked clients
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// RateLimit middleware limits requests per IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
