package orthoroute

import "container/heap"

// direction is a 4-connected step on the lattice.
type direction struct {
	dc, dr int
}

// Neighbor expansion order is fixed so equal-cost searches are
// deterministic across calls.
var directions = [4]direction{
	{1, 0},  // east
	{-1, 0}, // west
	{0, 1},  // south
	{0, -1}, // north
}

var dirNone = direction{}

// searchNode is one A* state.
type searchNode struct {
	pt     gridPoint
	g      int // cost from start
	h      int // Manhattan estimate to goal
	f      int // g + h
	parent *searchNode
	dir    direction // step taken to enter this node
	index  int       // position in the heap
}

// nodeQueue is a priority queue of search nodes ordered by f cost, with
// deterministic tie-breaking on h and then cell position.
type nodeQueue []*searchNode

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	if q[i].pt.Row != q[j].pt.Row {
		return q[i].pt.Row < q[j].pt.Row
	}
	return q[i].pt.Col < q[j].pt.Col
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*q)
	*q = append(*q, n)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*q = old[:n-1]
	return node
}

// findPath runs a weighted 4-connected A* search from start to goal.
//
// The step cost is the destination cell's weight, so soft buffer zones
// repel the route without forbidding it. The heuristic is plain Manhattan
// distance, which is admissible because the minimum cell weight is 1.
// Diagonal movement does not exist in the search space; orthogonality is
// a property of the graph, not a post-processing step.
//
// Returns the ordered cell path from start to goal, or ErrNoPath.
func findPath(l *lattice, start, goal gridPoint) ([]gridPoint, error) {
	if start == goal {
		return []gridPoint{start}, nil
	}

	open := &nodeQueue{}
	heap.Init(open)
	closed := make(map[gridPoint]bool)
	known := make(map[gridPoint]*searchNode)

	startNode := &searchNode{
		pt:  start,
		h:   manhattan(start, goal),
		dir: dirNone,
	}
	startNode.f = startNode.h
	heap.Push(open, startNode)
	known[start] = startNode

	// The closed set can hold at most every cell; anything beyond that
	// means the lattice state is corrupt, so bail out instead of looping.
	limit := l.cols * l.rows

	for open.Len() > 0 {
		current := heap.Pop(open).(*searchNode)
		if current.pt == goal {
			return reconstruct(current), nil
		}
		closed[current.pt] = true
		if len(closed) > limit {
			break
		}

		for _, d := range directions {
			next := gridPoint{Col: current.pt.Col + d.dc, Row: current.pt.Row + d.dr}
			if closed[next] || !l.walkableAt(next) {
				continue
			}
			if !turnAllowed(l, current, d) {
				continue
			}

			g := current.g + l.weightAt(next)
			existing, seen := known[next]
			if !seen {
				node := &searchNode{
					pt:     next,
					g:      g,
					h:      manhattan(next, goal),
					parent: current,
					dir:    d,
				}
				node.f = node.g + node.h
				heap.Push(open, node)
				known[next] = node
			} else if g < existing.g {
				existing.g = g
				existing.f = g + existing.h
				existing.parent = current
				existing.dir = d
				heap.Fix(open, existing.index)
			}
		}
	}

	return nil, &RouteError{Stage: "search", Err: ErrNoPath}
}

// turnAllowed rejects turns that graze an obstacle corner. When the path
// bends at current's cell, the cell on the inside of the elbow (diagonal
// between the previous cell and the next one) must be walkable; otherwise
// the rendered route would clip the corner of the blocked region.
func turnAllowed(l *lattice, current *searchNode, next direction) bool {
	in := current.dir
	if in == dirNone || in == next {
		return true
	}
	inside := gridPoint{
		Col: current.pt.Col - in.dc + next.dc,
		Row: current.pt.Row - in.dr + next.dr,
	}
	return !l.inBounds(inside) || l.walkableAt(inside)
}

// manhattan is the cell-count distance between two lattice points.
func manhattan(a, b gridPoint) int {
	return absInt(a.Col-b.Col) + absInt(a.Row-b.Row)
}

// reconstruct walks parent links back from the goal node.
func reconstruct(goal *searchNode) []gridPoint {
	n := 0
	for node := goal; node != nil; node = node.parent {
		n++
	}
	path := make([]gridPoint, n)
	for node := goal; node != nil; node = node.parent {
		n--
		path[n] = node.pt
	}
	return path
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
