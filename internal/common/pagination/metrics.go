package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts paginated requests.
	// Labels: status (HTTP status code), page_range (1-10, 11-50, ...), post_type
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recruitpro_pagination_requests_total",
			Help: "Total number of paginated listing and fetch requests",
		},
		[]string{"status", "page_range", "post_type"},
	)

	// DurationSeconds tracks duration per layer.
	// Labels: operation (handler, service, render)
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recruitpro_pagination_duration_seconds",
			Help:    "Pagination operation duration distribution",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// StyleSelected counts which presentation style the selector chose.
	StyleSelected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recruitpro_pagination_style_selected_total",
			Help: "Pagination styles chosen for rendered listings",
		},
		[]string{"style"},
	)

	// FetchesTotal counts asynchronous page fetches by outcome.
	// Labels: post_type, result (success, empty, forbidden, error)
	FetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recruitpro_pagination_fetches_total",
			Help: "Asynchronous load-more fetches by outcome",
		},
		[]string{"post_type", "result"},
	)

	// ErrorsTotal counts pagination errors by type.
	// Labels: type (validation, security, database, render)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recruitpro_pagination_errors_total",
			Help: "Total number of pagination errors",
		},
		[]string{"type"},
	)
)

// RecordRequest records a paginated request.
func RecordRequest(statusCode int, page int, postType string) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), getPageRangeBucket(page), postType).Inc()
}

// RecordDuration records operation duration in seconds.
func RecordDuration(operation string, duration float64) {
	DurationSeconds.WithLabelValues(operation).Observe(duration)
}

// RecordStyle records the style chosen for a rendered listing.
func RecordStyle(style Style) {
	StyleSelected.WithLabelValues(string(style)).Inc()
}

// RecordFetch records the outcome of an asynchronous fetch.
func RecordFetch(postType, result string) {
	FetchesTotal.WithLabelValues(postType, result).Inc()
}

// RecordError records an error metric.
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

func getPageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
