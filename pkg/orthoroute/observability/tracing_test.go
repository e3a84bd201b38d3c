package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// withTestTracer points the package tracer at an in-memory exporter for
// the duration of a test.
func withTestTracer(t *testing.T) *tracetest.InMemoryExporter {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	prev := tracer
	tracer = provider.Tracer("orthoroute")
	t.Cleanup(func() {
		tracer = prev
		_ = provider.Shutdown(context.Background())
	})
	return exporter
}

func TestSpanManager_RouteSpan(t *testing.T) {
	exporter := withTestTracer(t)
	m := NewSpanManager()

	ctx, span := m.StartRouteSpan(context.Background())
	m.AddSpanEvent(ctx, "fallback", attribute.String("reason", "no path found"))
	m.EndSpan(span, true)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	got := spans[0]
	assert.Equal(t, "orthoroute.route", got.Name)

	require.Len(t, got.Events, 1)
	assert.Equal(t, "fallback", got.Events[0].Name)

	found := false
	for _, attr := range got.Attributes {
		if attr.Key == "route.fallback" {
			found = true
			assert.True(t, attr.Value.AsBool())
		}
	}
	assert.True(t, found, "route.fallback attribute missing")
}

func TestSpanManager_EndSpanNil(t *testing.T) {
	// Must not panic.
	NewSpanManager().EndSpan(nil, false)
}

func TestSpanManager_AddSpanEventNoSpan(t *testing.T) {
	// No span in context: must be a silent no-op.
	NewSpanManager().AddSpanEvent(context.Background(), "orphan")
}
