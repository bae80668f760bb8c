package slo

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	"recruitpro/internal/handler/http/responsewriter"
)

// DefaultMaxSamples bounds the latency samples kept per window.
const DefaultMaxSamples = 10000

// Window is what a Tracker saw between two flushes.
type Window struct {
	Requests     int
	Failed       int
	Availability float64
	ErrorRate    float64
	P95          float64
	P99          float64
}

// Met reports whether the window is within every target. An empty window
// meets them.
func (w Window) Met() bool {
	if w.Requests == 0 {
		return true
	}
	return w.Availability*100 >= AvailabilitySLO &&
		w.ErrorRate <= ErrorRateSLO &&
		w.P95 <= LatencyP95SLO &&
		w.P99 <= LatencyP99SLO
}

// Tracker counts request outcomes and latencies and turns them into the SLO
// gauges on Flush. Latency samples past MaxSamples in one window are counted
// but not kept.
type Tracker struct {
	MaxSamples int

	mu        sync.Mutex
	requests  int
	failed    int
	latencies []float64
}

// NewTracker returns a Tracker keeping up to DefaultMaxSamples latencies.
func NewTracker() *Tracker {
	return &Tracker{MaxSamples: DefaultMaxSamples}
}

// Observe records one finished request.
func (t *Tracker) Observe(status int, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests++
	if status >= http.StatusInternalServerError {
		t.failed++
	}
	if len(t.latencies) < t.MaxSamples {
		t.latencies = append(t.latencies, d.Seconds())
	}
}

// Middleware observes every request passing through.
func (t *Tracker) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := responsewriter.Wrap(w)
		next.ServeHTTP(rw, r)
		t.Observe(rw.StatusCode(), time.Since(start))
	})
}

// Flush computes the window since the previous flush, publishes it to the
// gauges and starts a new window. Gauges keep their values across empty
// windows.
func (t *Tracker) Flush() Window {
	t.mu.Lock()
	requests, failed, samples := t.requests, t.failed, t.latencies
	t.requests, t.failed, t.latencies = 0, 0, nil
	t.mu.Unlock()

	w := Window{Requests: requests, Failed: failed}
	if requests == 0 {
		return w
	}

	w.ErrorRate = float64(failed) / float64(requests)
	w.Availability = float64(requests-failed) / float64(requests)
	sort.Float64s(samples)
	w.P95 = percentile(samples, 0.95)
	w.P99 = percentile(samples, 0.99)

	UpdateAvailability(w.Availability)
	UpdateErrorRate(w.ErrorRate)
	UpdateLatencyP95(w.P95)
	UpdateLatencyP99(w.P99)
	return w
}

// Run flushes every interval until ctx is done and warns when a window
// misses a target.
func (t *Tracker) Run(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w := t.Flush()
			if !w.Met() {
				logger.Warn("SLO missed",
					slog.Int("requests", w.Requests),
					slog.Int("failed", w.Failed),
					slog.Float64("availability", w.Availability),
					slog.Float64("p95_seconds", w.P95),
					slog.Float64("p99_seconds", w.P99))
			}
		}
	}
}

// percentile returns the nearest-rank q-quantile of sorted.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(math.Ceil(q*float64(len(sorted)))) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx]
}
