package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/menyentuh/website/internal/api/dto/common"
	"github.com/menyentuh/website/internal/utils"
)

// RateLimitConfig defines configuration for the rate limiter
type RateLimitConfig struct {
	// Requests allowed per Interval for one client
	Requests int
	Interval time.Duration
	// Burst size (number of requests that can be made in a single burst)
	Burst int
	// Idle limiters are dropped after this long
	TTL time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ClientRateLimiter keeps one token bucket per client IP
type ClientRateLimiter struct {
	config  RateLimitConfig
	mu      sync.Mutex
	clients map[string]*clientLimiter
	now     func() time.Time
}

// NewClientRateLimiter creates a per-IP limiter
func NewClientRateLimiter(config RateLimitConfig) *ClientRateLimiter {
	if config.Requests <= 0 {
		config.Requests = 1
	}
	if config.Interval <= 0 {
		config.Interval = time.Second
	}
	// A zero burst would reject every request
	if config.Burst <= 0 {
		config.Burst = 1
	}
	if config.TTL <= 0 {
		config.TTL = 10 * time.Minute
	}
	return &ClientRateLimiter{
		config:  config,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// Limiter returns the bucket of one client, creating it on first use
func (l *ClientRateLimiter) Limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for k, c := range l.clients {
		if now.Sub(c.lastSeen) > l.config.TTL {
			delete(l.clients, k)
		}
	}

	c, ok := l.clients[key]
	if !ok {
		every := l.config.Interval / time.Duration(l.config.Requests)
		c = &clientLimiter{limiter: rate.NewLimiter(rate.Every(every), l.config.Burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

// Len reports how many clients are tracked
func (l *ClientRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimitMiddleware rejects clients that exceed their bucket with 429
func RateLimitMiddleware(limiter *ClientRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := limiter.Limiter(utils.GetRealIP(c))

		if !bucket.Allow() {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(bucket)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, common.NewErrorResponse(common.MsgTooManyRequests))
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.config.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(bucket.Tokens())))

		c.Next()
	}
}

// retryAfterSeconds is the time until the bucket holds a token again, rounded up
func retryAfterSeconds(bucket *rate.Limiter) int {
	r := bucket.Reserve()
	delay := r.Delay()
	// Only peeking; give the token back
	r.Cancel()

	seconds := int(math.Ceil(delay.Seconds()))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}
