package orthoroute

import (
	"log/slog"

	"github.com/rmurphy/orthoroute/pkg/orthoroute/observability"
)

// Option configures a Router at construction time.
type Option func(*Router)

// WithParams replaces the default routing parameters. Out-of-range
// values are clamped back to usable ones.
func WithParams(p Params) Option {
	return func(r *Router) {
		r.params = p
	}
}

// WithLogger enables structured logging of routing calls. Each call is
// tagged with a generated route_id. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics. The recorder uses the
// global OTel meter provider; configure it before routing.
func WithMetrics(enabled bool) Option {
	return func(r *Router) {
		if enabled {
			r.metrics = observability.NewMetricsRecorder()
		} else {
			r.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry tracing. One span is created per
// Route call, using the global OTel tracer provider.
func WithTracing(enabled bool) Option {
	return func(r *Router) {
		if enabled {
			r.spans = observability.NewSpanManager()
		} else {
			r.spans = observability.NoopSpanManager{}
		}
	}
}

// WithMetricsRecorder installs a custom metrics recorder. Mostly useful
// in tests.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(r *Router) {
		if m != nil {
			r.metrics = m
		}
	}
}
