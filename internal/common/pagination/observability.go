package pagination

import (
	"log/slog"
	"time"
)

// LogFetch logs an incoming asynchronous fetch.
func LogFetch(logger *slog.Logger, postType string, params Params) {
	logger.Info("pagination fetch",
		slog.String("post_type", postType),
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit))
}

// LogFetchResult logs the outcome of a fetch with its duration.
func LogFetchResult(logger *slog.Logger, postType string, meta Metadata, returnedCount int, duration time.Duration) {
	logger.Info("pagination fetch served",
		slog.String("post_type", postType),
		slog.Int("page", meta.Page),
		slog.Int("total_pages", meta.TotalPages),
		slog.Int64("total", meta.Total),
		slog.Int("returned_count", returnedCount),
		slog.Int64("duration_ms", duration.Milliseconds()))
}

// LogError logs a pagination failure.
func LogError(logger *slog.Logger, postType string, params Params, err error, errorType string) {
	logger.Warn("pagination error",
		slog.String("post_type", postType),
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.String("error", err.Error()),
		slog.String("error_type", errorType))
}
