package orthoroute

import "github.com/rmurphy/orthoroute/pkg/orthoroute/config"

// Default routing parameters. One set of named constants replaces the
// per-call-site constant drift that tends to accumulate in routing code.
const (
	// DefaultCellSize is the lattice cell size in pixels.
	DefaultCellSize = 50.0

	// DefaultHardPadding grows each obstacle into an unwalkable core.
	DefaultHardPadding = 20.0

	// DefaultSoftPadding grows each obstacle into a walkable but
	// expensive buffer zone.
	DefaultSoftPadding = 40.0

	// DefaultSoftWeight is the cell weight inside a soft buffer zone.
	DefaultSoftWeight = 20

	// DefaultObstacleMargin is added around each obstacle when computing
	// the lattice bounding region.
	DefaultObstacleMargin = 50.0

	// DefaultOuterMargin expands the whole bounding region so the search
	// has room to route around convex corners.
	DefaultOuterMargin = 150.0

	// DefaultApproachDistance is the length of the straight segment
	// leaving or entering a literal endpoint.
	DefaultApproachDistance = 20.0

	// DefaultCornerRadius is the rounding radius applied to interior
	// corners when smoothing.
	DefaultCornerRadius = 10.0

	// DefaultMaxGridDim caps either lattice dimension; larger layouts
	// fall back to the obstacle-blind Manhattan route.
	DefaultMaxGridDim = 500
)

// Params holds every tunable of the router. The zero value is not useful;
// start from DefaultParams (or ParamsFromConfig) and adjust.
type Params struct {
	CellSize         float64
	HardPadding      float64
	SoftPadding      float64
	SoftWeight       int
	ObstacleMargin   float64
	OuterMargin      float64
	ApproachDistance float64
	CornerRadius     float64
	MaxGridDim       int

	// SoftZone enables the weighted buffer zone around obstacles. It is
	// an aesthetic bias toward open space, not a correctness requirement.
	SoftZone bool
}

// DefaultParams returns the default routing parameters.
func DefaultParams() Params {
	return Params{
		CellSize:         DefaultCellSize,
		HardPadding:      DefaultHardPadding,
		SoftPadding:      DefaultSoftPadding,
		SoftWeight:       DefaultSoftWeight,
		ObstacleMargin:   DefaultObstacleMargin,
		OuterMargin:      DefaultOuterMargin,
		ApproachDistance: DefaultApproachDistance,
		CornerRadius:     DefaultCornerRadius,
		MaxGridDim:       DefaultMaxGridDim,
		SoftZone:         true,
	}
}

// ParamsFromConfig builds Params from a loaded configuration, using the
// defaults for any missing key.
//
// Recognized keys: cell_size, hard_padding, soft_padding, soft_weight,
// obstacle_margin, outer_margin, approach_distance, corner_radius,
// max_grid_dim, soft_zone.
func ParamsFromConfig(cfg config.Config) Params {
	p := DefaultParams()
	p.CellSize = cfg.Float("cell_size", p.CellSize)
	p.HardPadding = cfg.Float("hard_padding", p.HardPadding)
	p.SoftPadding = cfg.Float("soft_padding", p.SoftPadding)
	p.SoftWeight = cfg.Int("soft_weight", p.SoftWeight)
	p.ObstacleMargin = cfg.Float("obstacle_margin", p.ObstacleMargin)
	p.OuterMargin = cfg.Float("outer_margin", p.OuterMargin)
	p.ApproachDistance = cfg.Float("approach_distance", p.ApproachDistance)
	p.CornerRadius = cfg.Float("corner_radius", p.CornerRadius)
	p.MaxGridDim = cfg.Int("max_grid_dim", p.MaxGridDim)
	p.SoftZone = cfg.Bool("soft_zone", p.SoftZone)
	return p.sanitized()
}

// sanitized clamps out-of-range values back to usable ones so a bad
// config degrades routing quality instead of breaking it.
func (p Params) sanitized() Params {
	if p.CellSize <= 0 {
		p.CellSize = DefaultCellSize
	}
	if p.HardPadding < 0 {
		p.HardPadding = 0
	}
	if p.SoftPadding < p.HardPadding {
		p.SoftPadding = p.HardPadding
	}
	if p.SoftWeight < 1 {
		p.SoftWeight = 1
	}
	if p.ObstacleMargin < 0 {
		p.ObstacleMargin = 0
	}
	if p.OuterMargin < p.CellSize {
		p.OuterMargin = p.CellSize
	}
	if p.ApproachDistance < 0 {
		p.ApproachDistance = 0
	}
	if p.CornerRadius < 0 {
		p.CornerRadius = 0
	}
	if p.MaxGridDim < 2 {
		p.MaxGridDim = DefaultMaxGridDim
	}
	return p
}
