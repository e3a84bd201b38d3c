package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the orthoroute tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("orthoroute")

// SpanManager handles trace span lifecycle for routing calls.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartRouteSpan starts a span covering one routing call.
	StartRouteSpan(ctx context.Context) (context.Context, trace.Span)

	// EndSpan completes a route span. Fallback use is not an error, so
	// it is recorded as an attribute rather than an error status.
	EndSpan(span trace.Span, fallback bool)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartRouteSpan starts a span covering one routing call.
func (m *otelSpanManager) StartRouteSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer.Start(ctx, "orthoroute.route",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpan completes a route span.
func (m *otelSpanManager) EndSpan(span trace.Span, fallback bool) {
	if span == nil {
		return
	}
	span.SetAttributes(attribute.Bool("route.fallback", fallback))
	span.SetStatus(codes.Ok, "")
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
