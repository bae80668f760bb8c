// Package middleware holds request guards applied to individual routes.
package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"recruitpro/internal/handler/http/respond"
	"recruitpro/pkg/config"
)

// RateLimitedMessage is the failure message sent with 429 responses.
const RateLimitedMessage = "Too many requests. Please slow down."

var rateLimitedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "recruitpro_rate_limit_rejected_total",
		Help: "Requests rejected by the per-IP rate limiter",
	},
	[]string{"limiter"},
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP.
type IPRateLimiter struct {
	name      string
	limit     rate.Limit
	burst     int
	enabled   bool
	extractor IPExtractor
	now       func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewIPRateLimiter creates a limiter named name (used as the metric label).
// A nil extractor means RemoteAddrExtractor.
func NewIPRateLimiter(name string, cfg config.RateLimit, extractor IPExtractor) *IPRateLimiter {
	if extractor == nil {
		extractor = RemoteAddrExtractor{}
	}
	return &IPRateLimiter{
		name:      name,
		limit:     rate.Limit(cfg.RequestsPerSecond),
		burst:     cfg.Burst,
		enabled:   cfg.Enabled,
		extractor: extractor,
		now:       time.Now,
		visitors:  make(map[string]*visitor),
	}
}

// Allow reports whether a request from ip may proceed now. When it may not,
// the second value is how long until a token is available.
func (l *IPRateLimiter) Allow(ip string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	r := v.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Second
	}
	delay := r.DelayFrom(now)
	if delay == 0 {
		return true, 0
	}
	r.CancelAt(now)
	return false, delay
}

// Middleware rejects requests over the limit with 429 and a failure envelope.
// Requests whose IP cannot be determined are let through.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.enabled {
			next.ServeHTTP(w, r)
			return
		}

		ip, err := l.extractor.ExtractIP(r)
		if err != nil {
			slog.Warn("rate limiter: cannot determine client IP, allowing request",
				slog.String("remote_addr", r.RemoteAddr),
				slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		allowed, retryAfter := l.Allow(ip)
		if !allowed {
			rateLimitedTotal.WithLabelValues(l.name).Inc()
			slog.Debug("rate limit exceeded",
				slog.String("limiter", l.name),
				slog.String("ip", ip),
				slog.String("path", r.URL.Path))
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			respond.Failure(w, http.StatusTooManyRequests, RateLimitedMessage)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Cleanup forgets clients idle for longer than maxIdle and returns how many
// were removed.
func (l *IPRateLimiter) Cleanup(maxIdle time.Duration) int {
	cutoff := l.now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

// RunCleanup calls Cleanup every interval until ctx is done.
func (l *IPRateLimiter) RunCleanup(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Cleanup(maxIdle); n > 0 {
				slog.Debug("rate limiter cleanup",
					slog.String("limiter", l.name),
					slog.Int("removed", n))
			}
		}
	}
}

// Len returns the number of tracked clients.
func (l *IPRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
