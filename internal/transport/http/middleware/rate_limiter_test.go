package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/al-redowan/freefire-group-maker/internal/transport/http/dto"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLimiterAllowWithinQuota(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(3, time.Minute, clock.now)

	for i := 0; i < 3; i++ {
		ok, remaining, _ := l.Allow("1.2.3.4")
		require.True(t, ok)
		require.Equal(t, 2-i, remaining)
	}

	ok, remaining, resetAt := l.Allow("1.2.3.4")
	require.False(t, ok)
	require.Equal(t, 0, remaining)
	require.Equal(t, clock.t.Add(time.Minute), resetAt)
}

func TestLimiterWindowResets(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(1, time.Minute, clock.now)

	ok, _, _ := l.Allow("1.2.3.4")
	require.True(t, ok)
	ok, _, _ = l.Allow("1.2.3.4")
	require.False(t, ok)

	clock.advance(time.Minute)
	ok, _, _ = l.Allow("1.2.3.4")
	require.True(t, ok)
}

func TestLimiterTracksClientsSeparately(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(1, time.Minute, clock.now)

	ok, _, _ := l.Allow("1.2.3.4")
	require.True(t, ok)
	ok, _, _ = l.Allow("5.6.7.8")
	require.True(t, ok)
	ok, _, _ = l.Allow("1.2.3.4")
	require.False(t, ok)
}

func TestLimiterSweepsExpiredWindows(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(1, time.Minute, clock.now)

	l.Allow("1.2.3.4")
	l.Allow("5.6.7.8")
	clock.advance(2 * time.Minute)
	l.Allow("9.9.9.9")

	l.mu.Lock()
	defer l.mu.Unlock()
	require.Len(t, l.clients, 1)
}

func TestRateLimitMiddleware(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(1, time.Minute, clock.now)

	app := fiber.New()
	app.Post("/", RateLimit(l), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "1", resp.Header.Get("X-RateLimit-Limit"))
	require.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Retry-After"))

	var body dto.RateLimitedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 61, body.RetryAfter)
}
