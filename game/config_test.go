package game_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := game.DefaultConfig()
	require.NoError(t, cfg.Validate(geom.StandardCatalog()))
	assert.Equal(t, geom.Size{Width: 10, Height: 20}, cfg.Size())
	assert.Equal(t, 800*time.Millisecond, cfg.FallInterval)
	assert.Equal(t, geom.Pos(3, 18), cfg.Anchor())

	keymap, err := cfg.Keymap()
	require.NoError(t, err)
	assert.Equal(t, game.Rotate, keymap["w"])
	assert.Equal(t, game.HardDrop, keymap["space"])
	assert.Equal(t, game.Restart, keymap["r"])
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
width: 12
height: 24
fallInterval: 500ms
seed: 42
spawnAnchor: {x: 4, y: 20}
bindings:
  k: rotate
`)

	cfg, err := game.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.FallInterval)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, geom.Pos(4, 20), cfg.Anchor())
	assert.Equal(t, "rotate", cfg.Bindings["k"])
	assert.Equal(t, "move-left", cfg.Bindings["a"], "defaults are kept")
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := game.LoadConfig(writeConfig(t, "seed: 7\n"))
	require.NoError(t, err)
	assert.Equal(t, game.DefaultWidth, cfg.Width)
	assert.Equal(t, game.DefaultFallInterval, cfg.FallInterval)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"narrow", "width: 3\n", true},
		{"short", "height: 2\n", true},
		{"zero interval", "fallInterval: 0s\n", true},
		{"unknown command", "bindings: {x: jump}\n", true},
		{"anchor off board", "spawnAnchor: {x: 8, y: 18}\n", true},
		{"bad yaml", "width: [\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := game.LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, game.ErrInvalidConfig)
			} else {
				assert.NotErrorIs(t, err, game.ErrInvalidConfig)
			}
		})
	}

	_, err := game.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
