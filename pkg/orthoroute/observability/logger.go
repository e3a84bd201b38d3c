// Package observability provides opt-in observability for orthoroute:
// structured logging, metrics, and tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Everything defaults to a no-op implementation; an unobserved router
// pays nothing for this package.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger tags a logger with the route call's correlation ID.
// Returns nil for a nil logger.
func EnrichLogger(logger *slog.Logger, routeID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("route_id", routeID))
}

// LogRouteStart logs the start of a routing call.
func LogRouteStart(logger *slog.Logger, shapeCount int) {
	if logger == nil {
		return
	}
	logger.Debug("route starting",
		slog.Int("shapes", shapeCount),
	)
}

// LogRouteComplete logs a finished routing call.
func LogRouteComplete(logger *slog.Logger, durationMs float64, waypoints int, fallback bool) {
	if logger == nil {
		return
	}
	logger.Debug("route completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("waypoints", waypoints),
		slog.Bool("fallback", fallback),
	)
}

// LogFallback logs that exact routing degraded to the Manhattan fallback.
// This is expected behavior under the size cap or an enclosed target, so
// it logs at Info, not Error.
func LogFallback(logger *slog.Logger, reason error) {
	if logger == nil {
		return
	}
	logger.Info("route falling back",
		slog.String("reason", reason.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
