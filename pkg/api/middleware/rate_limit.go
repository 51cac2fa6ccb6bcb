package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sucrim/servicekit/pkg/api/dto"
	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map between cleanups
const maxTrackedClients = 10000

// RateLimiter stores rate limiters for each client
type RateLimiter struct {
	clients map[string]*rate.Limiter
	mu      sync.RWMutex

	requestsPerSecond rate.Limit
	burst             int

	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		clients:           make(map[string]*rate.Limiter),
		requestsPerSecond: rate.Limit(requestsPerSecond),
		burst:             burst,
		ticker:            time.NewTicker(5 * time.Minute),
		done:              make(chan struct{}),
	}

	go rl.cleanupClients()

	return rl
}

// cleanupClients resets the limiter map once it grows past maxTrackedClients
func (rl *RateLimiter) cleanupClients() {
	for {
		select {
		case <-rl.ticker.C:
			rl.mu.Lock()
			if len(rl.clients) > maxTrackedClients {
				rl.clients = make(map[string]*rate.Limiter)
			}
			rl.mu.Unlock()
		case <-rl.done:
			return
		}
	}
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() {
		rl.ticker.Stop()
		close(rl.done)
	})
}

// getLimiter returns the rate limiter for a client
func (rl *RateLimiter) getLimiter(clientID string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.clients[clientID]
	rl.mu.RUnlock()
	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, exists = rl.clients[clientID]; !exists {
		limiter = rate.NewLimiter(rl.requestsPerSecond, rl.burst)
		rl.clients[clientID] = limiter
	}
	return limiter
}

// RateLimit returns a middleware that rejects clients exceeding their budget
// with a failure envelope
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.Error[any]("Too many requests. Please try again later."))
			return
		}

		c.Next()
	}
}
