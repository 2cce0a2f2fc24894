package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// Limiter is a fixed-window request counter keyed by client identifier.
// The clock is injectable so window expiry is testable without sleeping.
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	clients map[string]*rateWindow
}

// NewLimiter builds a limiter allowing limit requests per window per client.
func NewLimiter(limit int, window time.Duration, now func() time.Time) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		limit:   limit,
		window:  window,
		now:     now,
		clients: make(map[string]*rateWindow),
	}
}

// Allow records a request for id and reports whether it fits the current
// window, along with the remaining quota and the window reset time.
func (l *Limiter) Allow(id string) (bool, int, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	w, ok := l.clients[id]
	if !ok || !now.Before(w.resetAt) {
		w = &rateWindow{resetAt: now.Add(l.window)}
		l.clients[id] = w
	}

	if w.count >= l.limit {
		return false, 0, w.resetAt
	}
	w.count++
	return true, l.limit - w.count, w.resetAt
}

// sweep drops expired windows. Caller holds the mutex.
func (l *Limiter) sweep(now time.Time) {
	for id, w := range l.clients {
		if !now.Before(w.resetAt) {
			delete(l.clients, id)
		}
	}
}

// RateLimit enforces the limiter per client IP and sets X-RateLimit headers.
// Exhausted clients receive 429 with a retryAfter hint in seconds.
func RateLimit(l *Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ok, remaining, resetAt := l.Allow(c.IP())

		c.Set("X-RateLimit-Limit", strconv.Itoa(l.limit))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(resetAt.Unix(), 10))

		if !ok {
			retryAfter := 0
			if retry := resetAt.Sub(l.now()); retry > 0 {
				retryAfter = int(retry.Seconds()) + 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.RateLimitedResponse{
				Error:      "too many requests, slow down",
				RetryAfter: retryAfter,
			})
		}
		return c.Next()
	}
}
