package orthoroute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Shared helpers for the routing tests.

// shape builds a top-left-anchored shape.
func shape(id string, x, y, w, h float64) Shape {
	return Shape{ID: id, Position: Point{X: x, Y: y}, Width: w, Height: h}
}

// endpoint builds an endpoint at (x, y) facing side.
func endpoint(x, y float64, side Side) Endpoint {
	return Endpoint{Point: Point{X: x, Y: y}, Side: side}
}

// emptyLattice builds a fully-walkable lattice for search tests.
func emptyLattice(cols, rows int) *lattice {
	l := &lattice{
		origin:   Point{},
		cellSize: 10,
		cols:     cols,
		rows:     rows,
		cells:    make([]cell, cols*rows),
	}
	for i := range l.cells {
		l.cells[i] = cell{walkable: true, weight: 1}
	}
	return l
}

func (l *lattice) block(g gridPoint) {
	l.cells[l.index(g)].walkable = false
}

func (l *lattice) setWeight(g gridPoint, w int) {
	l.cells[l.index(g)].weight = w
}

// assertAxisAligned fails if any consecutive waypoint pair differs on
// both axes.
func assertAxisAligned(t *testing.T, pts []Point) {
	t.Helper()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		aligned := math.Abs(a.X-b.X) < dedupeTolerance || math.Abs(a.Y-b.Y) < dedupeTolerance
		assert.True(t, aligned, "segment %d is diagonal: %+v -> %+v", i-1, a, b)
	}
}

// assertAvoids fails if any waypoint segment crosses an obstacle's
// hard-blocked rectangle.
func assertAvoids(t *testing.T, pts []Point, obstacles []Shape, p Params) {
	t.Helper()
	for _, s := range obstacles {
		hard := Rect{X: s.Position.X, Y: s.Position.Y, W: s.Width, H: s.Height}.Expand(p.HardPadding)
		for i := 1; i < len(pts); i++ {
			assert.False(t, hard.IntersectsSegment(pts[i-1], pts[i]),
				"segment %+v -> %+v crosses hard zone of %s", pts[i-1], pts[i], s.ID)
		}
	}
}

// containsCell reports whether the cell path visits g.
func containsCell(path []gridPoint, g gridPoint) bool {
	for _, p := range path {
		if p == g {
			return true
		}
	}
	return false
}
