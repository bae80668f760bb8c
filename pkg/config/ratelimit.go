package config

import "log/slog"

// RateLimit configures a per-client token bucket.
type RateLimit struct {
	Enabled           bool
	RequestsPerSecond float64
	Burst             int
}

// DefaultAJAXRateLimit allows 5 requests per second with bursts of 20.
func DefaultAJAXRateLimit() RateLimit {
	return RateLimit{Enabled: true, RequestsPerSecond: 5, Burst: 20}
}

// LoadAJAXRateLimit reads the limiter guarding the AJAX fetch endpoints.
//   - AJAX_RATE_LIMIT_ENABLED (default true)
//   - AJAX_RATE_LIMIT requests per second (default 5)
//   - AJAX_RATE_BURST (default 20)
//
// Non-positive values are replaced by the defaults with a warning.
func LoadAJAXRateLimit() RateLimit {
	def := DefaultAJAXRateLimit()
	cfg := RateLimit{
		Enabled:           GetEnvBool("AJAX_RATE_LIMIT_ENABLED", def.Enabled),
		RequestsPerSecond: GetEnvFloat("AJAX_RATE_LIMIT", def.RequestsPerSecond),
		Burst:             GetEnvInt("AJAX_RATE_BURST", def.Burst),
	}

	if cfg.RequestsPerSecond <= 0 {
		slog.Warn("invalid AJAX_RATE_LIMIT, using default",
			slog.Float64("value", cfg.RequestsPerSecond),
			slog.Float64("default", def.RequestsPerSecond))
		cfg.RequestsPerSecond = def.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		slog.Warn("invalid AJAX_RATE_BURST, using default",
			slog.Int("value", cfg.Burst),
			slog.Int("default", def.Burst))
		cfg.Burst = def.Burst
	}
	return cfg
}
