package orthoroute

import (
	"fmt"
	"math"
	"strings"
)

// PathOp is a drawing instruction kind.
type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpQuadTo
)

// PathCommand is one instruction of a DrawablePath. Ctrl is only
// meaningful for OpQuadTo.
type PathCommand struct {
	Op   PathOp
	To   Point
	Ctrl Point
}

// DrawablePath is a renderer-consumable path: straight segments with
// small quadratic rounding at interior corners. It is agnostic to the
// concrete consumer; SVG produces the common serialization.
type DrawablePath struct {
	Commands []PathCommand
}

// SVG serializes the path as an SVG path string ("M x y L x y Q cx cy x y").
// The output is deterministic for identical input geometry.
func (p DrawablePath) SVG() string {
	var b strings.Builder
	for i, c := range p.Commands {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMoveTo:
			fmt.Fprintf(&b, "M %s %s", fmtCoord(c.To.X), fmtCoord(c.To.Y))
		case OpLineTo:
			fmt.Fprintf(&b, "L %s %s", fmtCoord(c.To.X), fmtCoord(c.To.Y))
		case OpQuadTo:
			fmt.Fprintf(&b, "Q %s %s %s %s",
				fmtCoord(c.Ctrl.X), fmtCoord(c.Ctrl.Y),
				fmtCoord(c.To.X), fmtCoord(c.To.Y))
		}
	}
	return b.String()
}

func fmtCoord(v float64) string {
	// Keep -0 out of the serialization so equal geometry always yields
	// equal strings.
	if v == 0 {
		v = 0
	}
	return fmt.Sprintf("%g", v)
}

// minCornerRadius is the radius below which a corner is rendered sharp;
// a sub-pixel curve command is degenerate and some renderers reject it.
const minCornerRadius = 1.0

// smoothPath converts an ordered axis-aligned waypoint list into a
// drawable path. Each interior corner is rounded with a quadratic curve
// whose radius is clamped to half of either adjacent segment, so short
// segments never get overshot by their own rounding.
func smoothPath(waypoints []Point, radius float64) DrawablePath {
	if len(waypoints) == 0 {
		return DrawablePath{}
	}
	cmds := make([]PathCommand, 0, 2*len(waypoints))
	cmds = append(cmds, PathCommand{Op: OpMoveTo, To: waypoints[0]})

	for i := 1; i < len(waypoints)-1; i++ {
		prev, corner, next := waypoints[i-1], waypoints[i], waypoints[i+1]
		inLen := prev.dist(corner)
		outLen := corner.dist(next)
		r := math.Min(radius, math.Min(inLen/2, outLen/2))
		if r < minCornerRadius || inLen < axisEps || outLen < axisEps {
			cmds = append(cmds, PathCommand{Op: OpLineTo, To: corner})
			continue
		}
		entry := pointToward(corner, prev, r)
		exit := pointToward(corner, next, r)
		cmds = append(cmds,
			PathCommand{Op: OpLineTo, To: entry},
			PathCommand{Op: OpQuadTo, Ctrl: corner, To: exit})
	}

	if len(waypoints) > 1 {
		cmds = append(cmds, PathCommand{Op: OpLineTo, To: waypoints[len(waypoints)-1]})
	}
	return DrawablePath{Commands: cmds}
}

// pointToward returns the point dist away from origin in the direction of
// target.
func pointToward(origin, target Point, dist float64) Point {
	d := origin.dist(target)
	if d < axisEps {
		return origin
	}
	t := dist / d
	return Point{
		X: origin.X + (target.X-origin.X)*t,
		Y: origin.Y + (target.Y-origin.Y)*t,
	}
}

// labelPoint picks the caption anchor: the midpoint of the two waypoints
// straddling the middle index. This is the segment-count midpoint rather
// than the true arc-length midpoint, which is close enough for labels and
// much cheaper.
func labelPoint(waypoints []Point) Point {
	if len(waypoints) == 0 {
		return Point{}
	}
	if len(waypoints) == 1 {
		return waypoints[0]
	}
	mid := len(waypoints) / 2
	return midpoint(waypoints[mid-1], waypoints[mid])
}
