package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records routing metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordRoute records one routing call: its duration, whether the
	// fallback path was used, and the size of the lattice that was built
	// (zero when the grid stage was never reached).
	RecordRoute(ctx context.Context, duration time.Duration, fallback bool, gridCells int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	routeCalls   metric.Int64Counter
	routeLatency metric.Float64Histogram
	fallbacks    metric.Int64Counter
	gridCells    metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("orthoroute")

	routeCalls, err := meter.Int64Counter("orthoroute.route.calls",
		metric.WithDescription("Number of routing calls"),
	)
	if err != nil {
		return nil, err
	}

	routeLatency, err := meter.Float64Histogram("orthoroute.route.latency_ms",
		metric.WithDescription("Routing call latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	fallbacks, err := meter.Int64Counter("orthoroute.route.fallbacks",
		metric.WithDescription("Number of routing calls that used the fallback path"),
	)
	if err != nil {
		return nil, err
	}

	gridCells, err := meter.Int64Histogram("orthoroute.grid.cells",
		metric.WithDescription("Lattice size in cells per routing call"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		routeCalls:   routeCalls,
		routeLatency: routeLatency,
		fallbacks:    fallbacks,
		gridCells:    gridCells,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordRoute records one routing call.
func (m *otelMetrics) RecordRoute(ctx context.Context, duration time.Duration, fallback bool, gridCells int64) {
	attrs := []attribute.KeyValue{
		attribute.Bool("fallback", fallback),
	}

	m.routeCalls.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.routeLatency.Record(ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))
	if fallback {
		m.fallbacks.Add(ctx, 1)
	}
	if gridCells > 0 {
		m.gridCells.Record(ctx, gridCells)
	}
}
