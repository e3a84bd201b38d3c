package orthoroute

import (
	"errors"
	"fmt"
)

// Sentinel errors for the routing pipeline. None of these escape Route:
// each one selects the fallback path instead. They are exported so hosts
// and tests can identify why a result degraded via Result introspection
// and logging.
var (
	// ErrGridTooLarge indicates the bounding lattice would exceed the
	// configured dimension cap, so the exact search was not attempted.
	ErrGridTooLarge = errors.New("routing lattice exceeds size cap")

	// ErrNoPath indicates the search exhausted all reachable cells
	// without reaching the goal.
	ErrNoPath = errors.New("no path found")

	// ErrDegenerateEndpoints indicates an endpoint has non-finite
	// coordinates.
	ErrDegenerateEndpoints = errors.New("endpoint coordinates are not finite")
)

// RouteError wraps a pipeline error with the stage that produced it.
type RouteError struct {
	// Stage is the pipeline stage that failed ("grid", "search").
	Stage string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RouteError) Error() string {
	return fmt.Sprintf("route %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *RouteError) Unwrap() error {
	return e.Err
}
