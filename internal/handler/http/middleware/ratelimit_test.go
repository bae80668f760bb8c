package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitpro/internal/handler/http/respond"
	"recruitpro/pkg/config"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(cfg config.RateLimit) (*IPRateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	l := NewIPRateLimiter("test", cfg, nil)
	l.now = clock.Now
	return l, clock
}

func TestIPRateLimiter_Allow(t *testing.T) {
	l, clock := newTestLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 1, Burst: 2})

	ok, _ := l.Allow("192.0.2.1")
	assert.True(t, ok)
	ok, _ = l.Allow("192.0.2.1")
	assert.True(t, ok)

	ok, wait := l.Allow("192.0.2.1")
	assert.False(t, ok)
	assert.Equal(t, time.Second, wait)

	// other clients have their own bucket
	ok, _ = l.Allow("192.0.2.2")
	assert.True(t, ok)

	clock.Advance(time.Second)
	ok, _ = l.Allow("192.0.2.1")
	assert.True(t, ok, "token should refill after one second")
}

func TestIPRateLimiter_RejectedCallsDoNotConsume(t *testing.T) {
	l, clock := newTestLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 1, Burst: 1})

	ok, _ := l.Allow("192.0.2.1")
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		ok, _ = l.Allow("192.0.2.1")
		require.False(t, ok)
	}

	clock.Advance(time.Second)
	ok, _ = l.Allow("192.0.2.1")
	assert.True(t, ok)
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	l, _ := newTestLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 0.5, Burst: 1})

	var calls atomic.Int32
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/ajax/load-more", nil)
		req.RemoteAddr = "203.0.113.5:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	first := send()
	assert.Equal(t, http.StatusOK, first.Code)

	second := send()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "2", second.Header().Get("Retry-After"))

	var env struct {
		Success bool                `json:"success"`
		Data    respond.FailureData `json:"data"`
	}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.Equal(t, RateLimitedMessage, env.Data.Message)

	assert.Equal(t, int32(1), calls.Load())
}

func TestIPRateLimiter_MiddlewareDisabled(t *testing.T) {
	l, _ := newTestLimiter(config.RateLimit{Enabled: false, RequestsPerSecond: 1, Burst: 1})

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
	assert.Zero(t, l.Len())
}

func TestIPRateLimiter_MiddlewareUnknownIP(t *testing.T) {
	l, _ := newTestLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 1, Burst: 1})

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "garbage"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	l, clock := newTestLimiter(config.RateLimit{Enabled: true, RequestsPerSecond: 1, Burst: 1})

	l.Allow("192.0.2.1")
	clock.Advance(10 * time.Minute)
	l.Allow("192.0.2.2")
	require.Equal(t, 2, l.Len())

	removed := l.Cleanup(5 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, l.Len())

	clock.Advance(10 * time.Minute)
	assert.Equal(t, 1, l.Cleanup(5*time.Minute))
	assert.Zero(t, l.Len())
}
