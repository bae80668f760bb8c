// Package pagination holds the request-scoped pagination arithmetic, the
// presentation-style selector and the metrics shared by listing handlers.
package pagination

import (
	"os"
	"strconv"
)

// Config holds the bounds applied to page and per-page values coming from
// requests. Per-content-type defaults live in the settings package; these are
// the hard limits no setting can exceed.
type Config struct {
	DefaultPage  int // Page used when none is supplied
	DefaultLimit int // Per-page used when neither request nor settings supply one
	MaxLimit     int // Upper clamp for per-page values
}

// DefaultConfig returns page=1, limit=10, max=50.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     50,
	}
}

// LoadFromEnv loads pagination bounds from the environment.
//   - PAGINATION_DEFAULT_PAGE
//   - PAGINATION_DEFAULT_LIMIT
//   - PAGINATION_MAX_LIMIT
//
// Missing or malformed values fall back to DefaultConfig. Non-positive values
// are ignored as well, since a zero MaxLimit would make every request invalid.
func LoadFromEnv() Config {
	def := DefaultConfig()
	return Config{
		DefaultPage:  getEnvAsInt("PAGINATION_DEFAULT_PAGE", def.DefaultPage),
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 1 {
		return defaultValue
	}
	return val
}
