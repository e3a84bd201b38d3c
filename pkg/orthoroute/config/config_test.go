package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmurphy/orthoroute/pkg/orthoroute/config"
)

func TestNew_NilMap(t *testing.T) {
	cfg := config.New(nil)
	assert.NotNil(t, cfg.Raw())
	assert.False(t, cfg.Has("anything"))
}

func TestString(t *testing.T) {
	cfg := config.New(map[string]any{"name": "router", "count": 3})

	assert.Equal(t, "router", cfg.String("name", "x"))
	assert.Equal(t, "x", cfg.String("missing", "x"))
	assert.Equal(t, "x", cfg.String("count", "x"), "wrong type falls back")
}

func TestBool(t *testing.T) {
	cfg := config.New(map[string]any{"soft_zone": false, "name": "router"})

	assert.False(t, cfg.Bool("soft_zone", true))
	assert.True(t, cfg.Bool("missing", true))
	assert.True(t, cfg.Bool("name", true), "wrong type falls back")
}

func TestInt(t *testing.T) {
	cfg := config.New(map[string]any{
		"a": 5,
		"b": int64(6),
		"c": 7.0,
		"d": 7.5,
		"e": "8",
	})

	assert.Equal(t, 5, cfg.Int("a", 0))
	assert.Equal(t, 6, cfg.Int("b", 0))
	assert.Equal(t, 7, cfg.Int("c", 0))
	assert.Equal(t, 0, cfg.Int("d", 0), "fractional float is rejected")
	assert.Equal(t, 0, cfg.Int("e", 0), "string is rejected")
	assert.Equal(t, 9, cfg.Int("missing", 9))
}

func TestFloat(t *testing.T) {
	cfg := config.New(map[string]any{
		"a": 1.5,
		"b": 2,
		"c": int64(3),
		"d": "4",
	})

	assert.Equal(t, 1.5, cfg.Float("a", 0))
	assert.Equal(t, 2.0, cfg.Float("b", 0))
	assert.Equal(t, 3.0, cfg.Float("c", 0))
	assert.Equal(t, 0.0, cfg.Float("d", 0), "string is rejected")
	assert.Equal(t, 9.5, cfg.Float("missing", 9.5))
}

func TestFromYAML(t *testing.T) {
	cfg, err := config.FromYAML([]byte(`
cell_size: 25
soft_zone: false
label: router
`))
	require.NoError(t, err)

	assert.Equal(t, 25.0, cfg.Float("cell_size", 0))
	assert.False(t, cfg.Bool("soft_zone", true))
	assert.Equal(t, "router", cfg.String("label", ""))
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("cell_size: [unclosed"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	cfg, err := config.FromJSON([]byte(`{"cell_size": 25, "soft_zone": false}`))
	require.NoError(t, err)

	// encoding/json decodes all numbers as float64.
	assert.Equal(t, 25.0, cfg.Float("cell_size", 0))
	assert.Equal(t, 25, cfg.Int("cell_size", 0))
	assert.False(t, cfg.Bool("soft_zone", true))
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := config.FromJSON([]byte("{"))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "router.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("cell_size: 30\n"), 0o644))
	cfg, err := config.FromFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 30.0, cfg.Float("cell_size", 0))

	jsonPath := filepath.Join(dir, "router.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"cell_size": 40}`), 0o644))
	cfg, err = config.FromFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Float("cell_size", 0))
}

func TestFromFile_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "router.toml")
	require.NoError(t, os.WriteFile(path, []byte("cell_size = 30"), 0o644))

	_, err := config.FromFile(path)
	assert.ErrorContains(t, err, "unsupported config file extension")
}

func TestFromFile_Missing(t *testing.T) {
	_, err := config.FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config file")
}
