package orthoroute

// mergeCollinear collapses every monotone run of collinear points down to
// its two endpoints. Direction reversals are kept: a collapse across a
// reversal would silently delete the doubled-back leg. The first and last
// points are always preserved exactly.
func mergeCollinear(pts []Point) []Point {
	if len(pts) < 3 {
		return pts
	}
	out := []Point{pts[0]}
	prevDir := stepDir(pts[0], pts[1])
	for i := 1; i < len(pts)-1; i++ {
		dir := stepDir(pts[i], pts[i+1])
		if dir != prevDir {
			out = append(out, pts[i])
			prevDir = dir
		}
	}
	return append(out, pts[len(pts)-1])
}

// stepDir encodes the sign of the step a→b on each axis. Two consecutive
// steps with the same code are collinear and monotone.
type stepCode struct{ sx, sy int }

func stepDir(a, b Point) stepCode {
	return stepCode{sx: sign(b.X - a.X), sy: sign(b.Y - a.Y)}
}

// dedupePoints removes consecutive points closer than tol, keeping the
// earlier one, except that the final point always survives so the path
// still terminates exactly at the literal endpoint.
func dedupePoints(pts []Point, tol float64) []Point {
	if len(pts) < 2 {
		return pts
	}
	out := []Point{pts[0]}
	for i := 1; i < len(pts); i++ {
		if out[len(out)-1].dist(pts[i]) >= tol {
			out = append(out, pts[i])
			continue
		}
		if i == len(pts)-1 {
			if len(out) == 1 {
				out = append(out, pts[i])
			} else {
				out[len(out)-1] = pts[i]
			}
		}
	}
	return out
}

// cellCenters maps a lattice cell path to canvas-space points.
func cellCenters(l *lattice, cells []gridPoint) []Point {
	pts := make([]Point, len(cells))
	for i, c := range cells {
		pts[i] = l.center(c)
	}
	return pts
}
