package orthoroute

import "math"

// Default dimensions substituted for shapes whose size cannot be resolved.
// Routing through an unmeasured shape is worse than routing around a
// too-generous estimate, so unmeasured shapes keep a conservative footprint
// instead of being dropped.
const (
	DefaultShapeWidth  = 160
	DefaultShapeHeight = 80
)

// Origin selects the coordinate convention of a Shape's Position.
type Origin int

const (
	// OriginTopLeft means Position is the shape's top-left corner.
	OriginTopLeft Origin = iota
	// OriginCenter means Position is the shape's center.
	OriginCenter
)

// Shape is a raw canvas element as reported by the host: an ID plus
// position and size. Hosts measure shapes from different sources (layout
// model, live DOM-style measurements), so Position may be a top-left
// corner or a center point, and Width/Height may be unknown (zero).
type Shape struct {
	ID       string
	Position Point
	Width    float64
	Height   float64
	Origin   Origin
}

// Obstacle is a normalized axis-aligned rectangle a route must not cross.
type Obstacle struct {
	ID     string
	Bounds Rect
}

// NormalizeShapes converts raw shapes into routing obstacles.
//
// Shapes whose ID appears in exclude (typically the edge's own source and
// target shapes) are omitted. Shapes with non-finite positions are dropped.
// Non-finite or non-positive dimensions are replaced with the conservative
// defaults rather than dropping the shape. The input is not modified.
func NormalizeShapes(shapes []Shape, exclude []string) []Obstacle {
	excluded := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		excluded[id] = struct{}{}
	}

	obstacles := make([]Obstacle, 0, len(shapes))
	for _, s := range shapes {
		if _, skip := excluded[s.ID]; skip {
			continue
		}
		if !s.Position.finite() {
			continue
		}

		w, h := s.Width, s.Height
		if !finitePositive(w) {
			w = DefaultShapeWidth
		}
		if !finitePositive(h) {
			h = DefaultShapeHeight
		}

		bounds := Rect{X: s.Position.X, Y: s.Position.Y, W: w, H: h}
		if s.Origin == OriginCenter {
			bounds.X -= w / 2
			bounds.Y -= h / 2
		}
		obstacles = append(obstacles, Obstacle{ID: s.ID, Bounds: bounds})
	}
	return obstacles
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
