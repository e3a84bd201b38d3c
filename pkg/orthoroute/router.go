package orthoroute

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/rmurphy/orthoroute/pkg/orthoroute/observability"
)

// Request is one routing call: two endpoints, a snapshot of the canvas
// shapes, and the IDs to exclude from obstacle consideration (typically
// the edge's own source and target shapes).
type Request struct {
	Source  Endpoint
	Target  Endpoint
	Shapes  []Shape
	Exclude []string
}

// Result is the routed edge. Waypoints is the pre-smoothing axis-aligned
// polyline, beginning and ending exactly at the literal endpoints. Path
// is the smoothed drawable form, and Label anchors the edge caption.
// Fallback reports that the obstacle-blind Manhattan route was used.
type Result struct {
	Path      DrawablePath
	Label     Point
	Waypoints []Point
	Fallback  bool
}

// Router computes orthogonal obstacle-avoiding routes. It is immutable
// after New and safe for concurrent use; each call builds and discards
// its own lattice.
type Router struct {
	params  Params
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// New creates a Router. With no options it uses DefaultParams and no-op
// observability.
func New(opts ...Option) *Router {
	r := &Router{
		params:  DefaultParams(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.params = r.params.sanitized()
	return r
}

// Params returns the router's effective parameters.
func (r *Router) Params() Params {
	return r.params
}

// Route computes the path for one edge. It never fails: if exact routing
// is infeasible or the inputs are malformed, the result carries the
// fallback Manhattan path and Result.Fallback is true.
//
// ctx is used only for metric and trace propagation; the computation is
// synchronous, performs no I/O, and ignores cancellation.
func (r *Router) Route(ctx context.Context, req Request) Result {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := r.logger
	if logger != nil {
		routeID := fmt.Sprintf("route-%s", uuid.New().String()[:8])
		logger = observability.EnrichLogger(logger, routeID)
		observability.LogRouteStart(logger, len(req.Shapes))
	}
	start := time.Now()
	ctx, span := r.spans.StartRouteSpan(ctx)

	obstacles := NormalizeShapes(req.Shapes, req.Exclude)
	waypoints, gridCells, err := r.exactRoute(req.Source, req.Target, obstacles)
	if err != nil {
		observability.LogFallback(logger, err)
		r.spans.AddSpanEvent(ctx, "fallback",
			attribute.String("reason", err.Error()))
		waypoints = fallbackPath(req.Source, req.Target, r.params)
	}

	res := Result{
		Path:      smoothPath(waypoints, r.params.CornerRadius),
		Label:     labelPoint(waypoints),
		Waypoints: waypoints,
		Fallback:  err != nil,
	}

	duration := time.Since(start)
	observability.LogRouteComplete(logger,
		float64(duration.Microseconds())/1000, len(waypoints), res.Fallback)
	r.metrics.RecordRoute(ctx, duration, res.Fallback, int64(gridCells))
	r.spans.EndSpan(span, res.Fallback)

	return res
}

// exactRoute runs the full grid pipeline. It returns the stitched
// waypoint list and the lattice cell count, or the stage error that
// should trigger the fallback.
func (r *Router) exactRoute(src, dst Endpoint, obstacles []Obstacle) ([]Point, int, error) {
	if !src.Point.finite() || !dst.Point.finite() {
		return nil, 0, &RouteError{Stage: "grid", Err: ErrDegenerateEndpoints}
	}

	sa := approachPoint(src, r.params.ApproachDistance)
	da := approachPoint(dst, r.params.ApproachDistance)

	// sa leads the anchor list: the lattice is aligned on it.
	l, err := buildLattice([]Point{sa, da, src.Point, dst.Point}, obstacles, r.params)
	if err != nil {
		return nil, 0, err
	}
	cellCount := l.cols * l.rows

	startCell := l.cellAt(sa)
	goalCell := l.cellAt(da)
	l.forceWalkable(startCell)
	l.forceWalkable(goalCell)

	cells, err := findPath(l, startCell, goalCell)
	if err != nil {
		return nil, cellCount, err
	}

	compressed := mergeCollinear(cellCenters(l, cells))
	return stitch(src, dst, compressed, r.params), cellCount, nil
}

// defaultRouter backs the package-level Route convenience function.
var defaultRouter = New()

// Route routes one edge with the default router and parameters. It
// mirrors the single-call shape most hosts want: source port, target
// port, canvas shapes, and the IDs of the edge's own shapes.
func Route(src Point, srcSide Side, dst Point, dstSide Side, shapes []Shape, exclude []string) Result {
	return defaultRouter.Route(context.Background(), Request{
		Source:  Endpoint{Point: src, Side: srcSide},
		Target:  Endpoint{Point: dst, Side: dstSide},
		Shapes:  shapes,
		Exclude: exclude,
	})
}
