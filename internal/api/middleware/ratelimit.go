package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/inspection-pricing/internal/metrics"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	nowFunc   func() time.Time

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a per-client limiter allowing perSecond requests
// with the given burst.
func NewRateLimiter(perSecond float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	r := &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		nowFunc:   time.Now,
		clients:   make(map[string]*clientLimiter),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.lastSweep = r.nowFunc()
	return r
}

// Allow reports whether the client may make a request now. When it may
// not, it also returns how long until a token is available.
func (r *RateLimiter) Allow(client string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	r.sweep(now)

	cl, ok := r.clients[client]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.perSecond, r.burst)}
		r.clients[client] = cl
	}
	cl.lastSeen = now

	res := cl.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, 0
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Clients returns the number of tracked clients.
func (r *RateLimiter) Clients() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// sweep drops limiters idle longer than limiterIdleTTL, at most once per TTL.
func (r *RateLimiter) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < limiterIdleTTL {
		return
	}
	for ip, cl := range r.clients {
		if now.Sub(cl.lastSeen) >= limiterIdleTTL {
			delete(r.clients, ip)
		}
	}
	r.lastSweep = now
}

// RateLimit returns Echo middleware that rejects clients over their budget
// with 429 and a Retry-After header. Probe and scrape paths are exempt.
func RateLimit(r *RateLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipped(routePath(c)) {
				return next(c)
			}

			ok, wait := r.Allow(c.RealIP())
			if !ok {
				metrics.HTTPRateLimitedTotal.Inc()
				if wait > 0 {
					secs := int(math.Ceil(wait.Seconds()))
					c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
				}
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"error": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
