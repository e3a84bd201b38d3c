package orthoroute

import "math"

// Point is a canvas-space coordinate in pixels.
type Point struct {
	X float64
	Y float64
}

// finite reports whether both coordinates are finite numbers.
func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// dist returns the Euclidean distance to q.
func (p Point) dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Side is the facing direction of a connection endpoint on its owning shape.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// vector returns the outward unit direction for the side.
// Canvas coordinates grow rightward and downward, so SideTop points -Y.
func (s Side) vector() (dx, dy float64) {
	switch s {
	case SideTop:
		return 0, -1
	case SideBottom:
		return 0, 1
	case SideLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// horizontal reports whether the side's axis is the X axis.
func (s Side) horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Endpoint is one end of an edge: a literal port position plus the side of
// the owning shape the port sits on. The side dictates the direction of
// the first (or last) rendered segment.
type Endpoint struct {
	Point Point
	Side  Side
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// union2 extends the rectangle to include the point p.
func (r Rect) union2(p Point) Rect {
	return r.Union(Rect{X: p.X, Y: p.Y})
}

// Contains reports whether p lies inside the rectangle (exclusive of the
// boundary, matching the "passes through the interior" avoidance rule).
func (r Rect) Contains(p Point) bool {
	return p.X > r.X && p.X < r.Right() && p.Y > r.Y && p.Y < r.Bottom()
}

// Overlaps reports whether the two rectangles share interior area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// IntersectsSegment reports whether the axis-aligned segment a-b crosses
// the rectangle's interior. Segments that merely touch the boundary do
// not count. Non-axis-aligned segments are checked conservatively by
// their bounding box.
func (r Rect) IntersectsSegment(a, b Point) bool {
	if math.Abs(a.Y-b.Y) < axisEps {
		y := a.Y
		if y <= r.Y || y >= r.Bottom() {
			return false
		}
		return math.Min(a.X, b.X) < r.Right() && math.Max(a.X, b.X) > r.X
	}
	if math.Abs(a.X-b.X) < axisEps {
		x := a.X
		if x <= r.X || x >= r.Right() {
			return false
		}
		return math.Min(a.Y, b.Y) < r.Bottom() && math.Max(a.Y, b.Y) > r.Y
	}
	return r.Overlaps(Rect{
		X: math.Min(a.X, b.X),
		Y: math.Min(a.Y, b.Y),
		W: math.Abs(a.X - b.X),
		H: math.Abs(a.Y - b.Y),
	})
}

// axisEps is the tolerance for treating two coordinates as equal when
// deciding whether a segment is horizontal or vertical.
const axisEps = 1e-6

// sign returns -1, 0, or 1 for v with a small dead zone around zero.
func sign(v float64) int {
	if v > axisEps {
		return 1
	}
	if v < -axisEps {
		return -1
	}
	return 0
}
