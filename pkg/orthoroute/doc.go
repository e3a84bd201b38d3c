/*
Package orthoroute computes orthogonal, obstacle-avoiding connection paths
between ports on a diagram canvas.

# Overview

orthoroute is the edge-routing core for node-editor style canvases: given
two endpoints (each with a facing direction), a snapshot of the shapes on
the canvas, and the IDs of the shapes the edge itself belongs to, it
produces a drawable path that

  - never crosses another shape's padded bounds when an exact route exists,
  - is strictly axis-aligned (no diagonal segments),
  - leaves and enters each endpoint along that endpoint's facing side,
  - degrades to a cheap Manhattan fallback when exact routing is
    infeasible or would be too expensive.

Internally a route is computed in stages: shape normalization, lattice
construction over the relevant canvas region, weighted 4-connected A*
search, collinear compression, endpoint stitching, and corner smoothing.
Each stage is bounded; a hard cap on lattice dimensions keeps worst-case
latency constant by switching to the fallback instead of searching
pathological layouts.

# Basic Usage

Route a single edge with the default parameters:

	res := orthoroute.Route(
	    orthoroute.Point{X: 0, Y: 0}, orthoroute.SideRight,
	    orthoroute.Point{X: 400, Y: 120}, orthoroute.SideLeft,
	    shapes, []string{"src-node", "dst-node"})

	svg := res.Path.SVG()     // "M 0 0 L ... Q ..."
	label := res.Label        // anchor point for the edge caption

For repeated routing (for example while a node is dragged), build a Router
once and reuse it:

	router := orthoroute.New(orthoroute.WithParams(params))
	res := router.Route(ctx, orthoroute.Request{
	    Source:  orthoroute.Endpoint{Point: a, Side: orthoroute.SideRight},
	    Target:  orthoroute.Endpoint{Point: b, Side: orthoroute.SideLeft},
	    Shapes:  shapes,
	    Exclude: []string{"src-node", "dst-node"},
	})

Route never fails: when the lattice would exceed the size cap, when the
search finds no path, or when the inputs are malformed, the result carries
a side-aware 1–2 bend Manhattan path and Result.Fallback is true.

# Tuning

All routing constants live in Params (cell size, obstacle paddings, outer
margin, approach distance, corner radius, lattice cap). Load them from
YAML or JSON with the config subpackage:

	cfg, err := config.FromFile("router.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	router := orthoroute.New(orthoroute.WithParams(orthoroute.ParamsFromConfig(cfg)))

The soft buffer zone (walkable-but-expensive cells around each obstacle)
is an aesthetic bias, not a correctness requirement; disable it with
Params.SoftZone = false to allow tighter routing.

# Observability

Logging, metrics, and tracing are opt-in and default to no-ops:

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := orthoroute.New(
	    orthoroute.WithLogger(logger),
	    orthoroute.WithMetrics(true),
	    orthoroute.WithTracing(true))

Logs carry structured fields: route_id, duration_ms, waypoints, fallback.
OpenTelemetry metrics: orthoroute.route.calls, orthoroute.route.latency_ms,
orthoroute.route.fallbacks, orthoroute.grid.cells.
OpenTelemetry tracing: one orthoroute.route span per call with stage events.

# Determinism and Thread Safety

A route is a pure function of its inputs: identical requests produce
byte-identical output, including the SVG serialization. No state is
retained between calls; every call builds and discards its own lattice.

  - Router IS safe for concurrent use (immutable after New)
  - Result and all geometry values are plain data

# Subpackages

  - config: typed configuration loading (YAML, JSON)
  - observability: logging, metrics, and tracing helpers
*/
package orthoroute
