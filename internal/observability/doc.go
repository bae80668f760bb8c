// Package observability groups the logging and tracing helpers shared by the
// HTTP layer and the listing use case.
//
// Subpackages:
//   - logging: slog construction from the environment and context propagation
//   - tracing: OpenTelemetry tracer access and HTTP server spans
//   - slo: availability and latency indicators per reporting window
//
// Prometheus collectors live next to the code they measure
// (common/pagination, handler/http, resilience/circuitbreaker).
package observability
