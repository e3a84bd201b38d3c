package orthoroute

import "math"

// fallbackPath produces an obstacle-blind Manhattan route directly
// between the literal endpoints. It is used whenever exact routing is
// infeasible (lattice over the size cap, no path found, malformed
// inputs): a geometrically imperfect edge is better than a missing one.
//
// When both endpoints face along the same axis the route is a "Z" with
// its crossing leg halfway between the approach points; otherwise a
// single "L" elbow suffices. The shape always departs and arrives along
// the declared sides.
func fallbackPath(src, dst Endpoint, p Params) []Point {
	src.Point = sanitizePoint(src.Point)
	dst.Point = sanitizePoint(dst.Point)

	sa := approachPoint(src, p.ApproachDistance)
	da := approachPoint(dst, p.ApproachDistance)

	pts := []Point{src.Point, sa}
	switch {
	case src.Side.horizontal() && dst.Side.horizontal():
		midX := (sa.X + da.X) / 2
		pts = append(pts, Point{X: midX, Y: sa.Y}, Point{X: midX, Y: da.Y})
	case !src.Side.horizontal() && !dst.Side.horizontal():
		midY := (sa.Y + da.Y) / 2
		pts = append(pts, Point{X: sa.X, Y: midY}, Point{X: da.X, Y: midY})
	default:
		pts = append(pts, joinOrtho(sa, da, src.Side)...)
	}
	pts = append(pts, da, dst.Point)

	return mergeCollinear(dedupePoints(pts, dedupeTolerance))
}

// sanitizePoint zeroes non-finite coordinates. The fallback contract is
// "always return something renderable", which NaN geometry would break.
func sanitizePoint(p Point) Point {
	if !p.finite() {
		if !finiteFloat(p.X) {
			p.X = 0
		}
		if !finiteFloat(p.Y) {
			p.Y = 0
		}
	}
	return p
}

func finiteFloat(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
