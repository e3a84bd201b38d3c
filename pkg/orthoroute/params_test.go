package orthoroute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmurphy/orthoroute/pkg/orthoroute/config"
)

// TestDefaultParams verifies the documented defaults.
func TestDefaultParams(t *testing.T) {
	p := DefaultParams()

	assert.Equal(t, 50.0, p.CellSize)
	assert.Equal(t, 20.0, p.HardPadding)
	assert.Equal(t, 40.0, p.SoftPadding)
	assert.Equal(t, 20, p.SoftWeight)
	assert.Equal(t, 50.0, p.ObstacleMargin)
	assert.Equal(t, 150.0, p.OuterMargin)
	assert.Equal(t, 20.0, p.ApproachDistance)
	assert.Equal(t, 10.0, p.CornerRadius)
	assert.Equal(t, 500, p.MaxGridDim)
	assert.True(t, p.SoftZone)
}

// TestParamsFromConfig verifies config keys override defaults and
// missing keys keep them.
func TestParamsFromConfig(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
cell_size: 25
soft_weight: 5
soft_zone: false
max_grid_dim: 100
`))
	require.NoError(t, err)

	p := ParamsFromConfig(cfg)

	assert.Equal(t, 25.0, p.CellSize)
	assert.Equal(t, 5, p.SoftWeight)
	assert.False(t, p.SoftZone)
	assert.Equal(t, 100, p.MaxGridDim)
	// Untouched keys keep their defaults.
	assert.Equal(t, DefaultHardPadding, p.HardPadding)
	assert.Equal(t, DefaultCornerRadius, p.CornerRadius)
}

// TestParamsSanitized verifies out-of-range values are clamped instead
// of breaking the router.
func TestParamsSanitized(t *testing.T) {
	p := Params{
		CellSize:         -1,
		HardPadding:      -5,
		SoftPadding:      -10,
		SoftWeight:       0,
		ObstacleMargin:   -1,
		OuterMargin:      0,
		ApproachDistance: -3,
		CornerRadius:     -2,
		MaxGridDim:       1,
	}.sanitized()

	assert.Equal(t, DefaultCellSize, p.CellSize)
	assert.Equal(t, 0.0, p.HardPadding)
	assert.Equal(t, 0.0, p.SoftPadding, "soft padding rises to hard padding")
	assert.Equal(t, 1, p.SoftWeight)
	assert.Equal(t, 0.0, p.ObstacleMargin)
	assert.Equal(t, p.CellSize, p.OuterMargin, "outer margin rises to one cell")
	assert.Equal(t, 0.0, p.ApproachDistance)
	assert.Equal(t, 0.0, p.CornerRadius)
	assert.Equal(t, DefaultMaxGridDim, p.MaxGridDim)
}

// TestParamsSanitized_SoftPaddingFloor verifies the soft zone never
// shrinks inside the hard zone.
func TestParamsSanitized_SoftPaddingFloor(t *testing.T) {
	p := DefaultParams()
	p.HardPadding = 30
	p.SoftPadding = 10
	p = p.sanitized()
	assert.Equal(t, 30.0, p.SoftPadding)
}
