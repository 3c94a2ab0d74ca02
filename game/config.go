package game

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"time"

	"github.com/plus3/blockfall/geom"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Reference values.
const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultFallInterval = 800 * time.Millisecond
)

// Config holds the fixed parameters of a game session.
type Config struct {
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	FallInterval time.Duration `yaml:"fallInterval"`
	// SpawnAnchor is the origin of every new piece. Nil selects (Width/2-2, Height-2).
	SpawnAnchor *geom.GridPos `yaml:"spawnAnchor,omitempty"`
	// Seed fixes the piece sequence when non-zero.
	Seed uint64 `yaml:"seed"`
	// Bindings maps frontend key names to command names. Frontends decide
	// which key names they understand.
	Bindings map[string]string `yaml:"bindings"`
}

// DefaultConfig returns the reference 10x20 board with a 0.8s fall interval.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FallInterval: DefaultFallInterval,
		Bindings:     DefaultBindings(),
	}
}

// DefaultBindings returns the classic WASD layout plus arrow keys.
func DefaultBindings() map[string]string {
	return map[string]string{
		"w":     Rotate.String(),
		"up":    Rotate.String(),
		"s":     SoftDrop.String(),
		"down":  SoftDrop.String(),
		"a":     MoveLeft.String(),
		"left":  MoveLeft.String(),
		"d":     MoveRight.String(),
		"right": MoveRight.String(),
		"space": HardDrop.String(),
		"r":     Restart.String(),
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file keep
// their DefaultConfig values; bindings in the file are merged over the defaults.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	config.Bindings = nil
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	bindings := DefaultBindings()
	maps.Copy(bindings, config.Bindings)
	config.Bindings = bindings

	if err := config.Validate(geom.StandardCatalog()); err != nil {
		return nil, err
	}

	return &config, nil
}

// Size returns the board dimensions.
func (c Config) Size() geom.Size {
	return geom.Size{Width: c.Width, Height: c.Height}
}

// Anchor returns the spawn origin.
func (c Config) Anchor() geom.GridPos {
	if c.SpawnAnchor != nil {
		return *c.SpawnAnchor
	}
	return geom.Pos(c.Width/2-2, c.Height-2)
}

// Keymap resolves Bindings into commands.
func (c Config) Keymap() (map[string]Command, error) {
	keymap := make(map[string]Command, len(c.Bindings))
	for key, name := range c.Bindings {
		cmd, err := ParseCommand(name)
		if err != nil {
			return nil, fmt.Errorf("%w: binding %q: %w", ErrInvalidConfig, key, err)
		}
		keymap[key] = cmd
	}
	return keymap, nil
}

// Validate checks the dimensions, the fall interval, the bindings and that
// rotation 0 of every kind in catalog fits on the board at the spawn anchor.
func (c Config) Validate(catalog *geom.Catalog) error {
	if c.Width < 4 {
		return fmt.Errorf("%w: width must be >= 4, got %d", ErrInvalidConfig, c.Width)
	}
	if c.Height < 4 {
		return fmt.Errorf("%w: height must be >= 4, got %d", ErrInvalidConfig, c.Height)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("%w: fallInterval must be > 0, got %s", ErrInvalidConfig, c.FallInterval)
	}

	if _, err := c.Keymap(); err != nil {
		return err
	}

	size := c.Size()
	anchor := c.Anchor()
	for k := range catalog.Len() {
		kind := geom.Kind(k)
		for _, p := range catalog.Cells(kind, 0, anchor) {
			if !size.Contains(p) {
				return fmt.Errorf("%w: kind %s does not fit at spawn anchor %v", ErrInvalidConfig, catalog.Name(kind), anchor)
			}
		}
	}

	return nil
}
