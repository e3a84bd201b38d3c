package orthoroute

import "math"

// gridPoint is a lattice cell coordinate.
type gridPoint struct {
	Col, Row int
}

// cell is one lattice cell. weight is the cost of stepping into the cell;
// it is at least 1 and elevated inside soft buffer zones.
type cell struct {
	walkable bool
	weight   int
}

// lattice is a fixed-resolution grid over a bounded region of canvas
// space. It is built per routing call and discarded.
type lattice struct {
	origin   Point // canvas position of cell (0,0)'s top-left corner
	cellSize float64
	cols     int
	rows     int
	cells    []cell // row-major
}

// buildLattice constructs the search lattice for one routing call.
//
// The covered region is the union of the given anchor points (endpoints
// and approach points) and every obstacle expanded by the obstacle
// margin, with the outer margin added all around. The lattice is then
// anchored so that anchor[0] (the source approach point) falls exactly on
// a cell center; without this, routes that should be single straight
// segments pick up half-cell jogs from quantization.
//
// Returns ErrGridTooLarge when either dimension exceeds p.MaxGridDim.
func buildLattice(anchors []Point, obstacles []Obstacle, p Params) (*lattice, error) {
	bounds := Rect{X: anchors[0].X, Y: anchors[0].Y}
	for _, a := range anchors[1:] {
		bounds = bounds.union2(a)
	}
	for _, o := range obstacles {
		bounds = bounds.Union(o.Bounds.Expand(p.ObstacleMargin))
	}
	bounds = bounds.Expand(p.OuterMargin)

	origin := Point{
		X: alignOrigin(anchors[0].X, bounds.X, p.CellSize),
		Y: alignOrigin(anchors[0].Y, bounds.Y, p.CellSize),
	}

	cols := int(math.Ceil((bounds.Right() - origin.X) / p.CellSize))
	rows := int(math.Ceil((bounds.Bottom() - origin.Y) / p.CellSize))
	if cols > p.MaxGridDim || rows > p.MaxGridDim {
		return nil, &RouteError{Stage: "grid", Err: ErrGridTooLarge}
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	l := &lattice{
		origin:   origin,
		cellSize: p.CellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([]cell, cols*rows),
	}
	for i := range l.cells {
		l.cells[i] = cell{walkable: true, weight: 1}
	}

	// Soft zones first so the hard core overrides them where they overlap.
	if p.SoftZone && p.SoftWeight > 1 {
		for _, o := range obstacles {
			l.eachCellIn(o.Bounds.Expand(p.SoftPadding), func(i int) {
				l.cells[i].weight = p.SoftWeight
			})
		}
	}
	for _, o := range obstacles {
		l.eachCellIn(o.Bounds.Expand(p.HardPadding), func(i int) {
			l.cells[i].walkable = false
		})
	}

	return l, nil
}

// alignOrigin shifts min down so that anchor sits at the center of some
// cell, keeping the shifted origin at or below min.
func alignOrigin(anchor, min, cellSize float64) float64 {
	half := cellSize / 2
	return anchor - half - cellSize*math.Ceil((anchor-half-min)/cellSize)
}

func (l *lattice) index(g gridPoint) int {
	return g.Row*l.cols + g.Col
}

func (l *lattice) inBounds(g gridPoint) bool {
	return g.Col >= 0 && g.Col < l.cols && g.Row >= 0 && g.Row < l.rows
}

// walkableAt reports whether g can be stepped into. Out-of-bounds cells
// are not walkable.
func (l *lattice) walkableAt(g gridPoint) bool {
	return l.inBounds(g) && l.cells[l.index(g)].walkable
}

// weightAt returns the entry cost of g.
func (l *lattice) weightAt(g gridPoint) int {
	return l.cells[l.index(g)].weight
}

// cellAt quantizes a canvas point to its containing cell, clamped to the
// lattice bounds.
func (l *lattice) cellAt(p Point) gridPoint {
	col := int(math.Floor((p.X - l.origin.X) / l.cellSize))
	row := int(math.Floor((p.Y - l.origin.Y) / l.cellSize))
	return gridPoint{
		Col: clamp(col, 0, l.cols-1),
		Row: clamp(row, 0, l.rows-1),
	}
}

// center returns the canvas position of a cell's center.
func (l *lattice) center(g gridPoint) Point {
	return Point{
		X: l.origin.X + (float64(g.Col)+0.5)*l.cellSize,
		Y: l.origin.Y + (float64(g.Row)+0.5)*l.cellSize,
	}
}

// forceWalkable marks g walkable regardless of rasterization, so a start
// or goal cell inside a padded zone cannot make the search infeasible.
func (l *lattice) forceWalkable(g gridPoint) {
	if l.inBounds(g) {
		l.cells[l.index(g)].walkable = true
	}
}

// eachCellIn invokes fn with the index of every cell overlapping r.
func (l *lattice) eachCellIn(r Rect, fn func(i int)) {
	if r.Right() < l.origin.X || r.Bottom() < l.origin.Y ||
		r.X > l.origin.X+float64(l.cols)*l.cellSize ||
		r.Y > l.origin.Y+float64(l.rows)*l.cellSize {
		return
	}
	c0 := clamp(int(math.Floor((r.X-l.origin.X)/l.cellSize)), 0, l.cols-1)
	c1 := clamp(int(math.Floor((r.Right()-l.origin.X)/l.cellSize)), 0, l.cols-1)
	r0 := clamp(int(math.Floor((r.Y-l.origin.Y)/l.cellSize)), 0, l.rows-1)
	r1 := clamp(int(math.Floor((r.Bottom()-l.origin.Y)/l.cellSize)), 0, l.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			fn(row*l.cols + col)
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
