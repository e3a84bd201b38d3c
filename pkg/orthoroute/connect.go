package orthoroute

// dedupeTolerance merges stitched points closer than one pixel; anything
// below that is invisible at canvas scale.
const dedupeTolerance = 1.0

// approachPoint returns the point a fixed distance out from the endpoint
// along its facing side. The literal endpoint to this point is always a
// straight, correctly-oriented segment, so the search runs between
// approach points rather than the raw ports.
func approachPoint(e Endpoint, dist float64) Point {
	dx, dy := e.Side.vector()
	return Point{X: e.Point.X + dx*dist, Y: e.Point.Y + dy*dist}
}

// joinOrtho returns the elbow point needed to connect from to to with two
// axis-aligned segments, or nothing when the points are already aligned.
// The elbow leaves from along the axis of side first: horizontal-first
// for left/right endpoints, vertical-first for top/bottom.
func joinOrtho(from, to Point, side Side) []Point {
	if sign(from.X-to.X) == 0 || sign(from.Y-to.Y) == 0 {
		return nil
	}
	if side.horizontal() {
		return []Point{{X: to.X, Y: from.Y}}
	}
	return []Point{{X: from.X, Y: to.Y}}
}

// stitch reassembles the true endpoint coordinates around the compressed
// lattice path: endpoint, approach point, optional elbow, lattice
// waypoints, optional elbow, approach point, endpoint. The result is
// deduplicated and collapsed so every remaining segment is axis-aligned
// and the two terminal segments follow their endpoints' declared sides.
func stitch(src, dst Endpoint, lattice []Point, p Params) []Point {
	sa := approachPoint(src, p.ApproachDistance)
	da := approachPoint(dst, p.ApproachDistance)

	pts := make([]Point, 0, len(lattice)+6)
	pts = append(pts, src.Point, sa)

	// When the final lattice run overshoots the target approach point,
	// drop the overshooting waypoint; otherwise the route would double
	// back over itself for up to half a cell.
	if n := len(lattice); n >= 2 && reversesOver(lattice[n-2], lattice[n-1], da) {
		lattice = lattice[:n-1]
	}

	if len(lattice) == 0 {
		pts = append(pts, joinOrtho(sa, da, src.Side)...)
	} else {
		pts = append(pts, joinOrtho(sa, lattice[0], src.Side)...)
		pts = append(pts, lattice...)
		// The elbow next to the target is computed from the target's
		// perspective so the segment touching its approach point runs
		// along the target's axis.
		pts = append(pts, joinOrtho(da, lattice[len(lattice)-1], dst.Side)...)
	}

	pts = append(pts, da, dst.Point)
	return mergeCollinear(dedupePoints(pts, dedupeTolerance))
}

// reversesOver reports whether target sits behind last on the collinear
// run prev→last, so that continuing to target would reverse direction.
func reversesOver(prev, last, target Point) bool {
	if sign(last.Y-prev.Y) == 0 && sign(target.Y-last.Y) == 0 {
		return sign(target.X-last.X) == -sign(last.X-prev.X) && sign(target.X-last.X) != 0
	}
	if sign(last.X-prev.X) == 0 && sign(target.X-last.X) == 0 {
		return sign(target.Y-last.Y) == -sign(last.Y-prev.Y) && sign(target.Y-last.Y) != 0
	}
	return false
}
