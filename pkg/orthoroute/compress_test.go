package orthoroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMergeCollinear_CollapsesRuns verifies straight runs reduce to
// their endpoints.
func TestMergeCollinear_CollapsesRuns(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {20, 0}, {30, 0}, {30, 10}, {30, 20}}
	got := mergeCollinear(pts)
	assert.Equal(t, []Point{{0, 0}, {30, 0}, {30, 20}}, got)
}

// TestMergeCollinear_PreservesEndpoints verifies first and last points
// survive untouched.
func TestMergeCollinear_PreservesEndpoints(t *testing.T) {
	pts := []Point{{5, 5}, {5, 50}, {5, 100}}
	got := mergeCollinear(pts)
	assert.Equal(t, Point{5, 5}, got[0])
	assert.Equal(t, Point{5, 100}, got[len(got)-1])
	assert.Len(t, got, 2)
}

// TestMergeCollinear_KeepsReversals verifies a doubled-back leg is not
// silently collapsed away.
func TestMergeCollinear_KeepsReversals(t *testing.T) {
	pts := []Point{{0, 0}, {20, 0}, {10, 0}, {10, 30}}
	got := mergeCollinear(pts)
	assert.Equal(t, pts, got)
}

// TestMergeCollinear_Short verifies short inputs pass through.
func TestMergeCollinear_Short(t *testing.T) {
	assert.Empty(t, mergeCollinear(nil))
	one := []Point{{1, 1}}
	assert.Equal(t, one, mergeCollinear(one))
	two := []Point{{1, 1}, {2, 1}}
	assert.Equal(t, two, mergeCollinear(two))
}

// TestDedupePoints verifies sub-pixel duplicates merge while the final
// endpoint always survives exactly.
func TestDedupePoints(t *testing.T) {
	pts := []Point{{0, 0}, {0.5, 0}, {50, 0}, {50.2, 0}, {100, 0}}
	got := dedupePoints(pts, 1.0)
	assert.Equal(t, []Point{{0, 0}, {50, 0}, {100, 0}}, got)
}

// TestDedupePoints_FinalPointExact verifies a near-duplicate tail is
// replaced by the literal final point.
func TestDedupePoints_FinalPointExact(t *testing.T) {
	pts := []Point{{0, 0}, {100, 0}, {100.4, 0}}
	got := dedupePoints(pts, 1.0)
	assert.Equal(t, []Point{{0, 0}, {100.4, 0}}, got)
}
