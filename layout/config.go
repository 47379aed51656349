package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Defaults reproduce the 32×24 zone canvas at two cells per zone.
const (
	DefaultWidth      = 32
	DefaultHeight     = 24
	DefaultDensity    = 2
	DefaultCellPixels = 10
	DefaultEdgePixels = 2

	maxConfigSize = 1 << 20
)

// Config describes the canvas a maze is generated on.
type Config struct {
	// Width and Height of the canvas in zones.
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
	// Density is the number of cells along one zone edge.
	Density int `yaml:"density" json:"density"`
	// CellPixels is the drawn size of one cell; EdgePixels the width of a passage.
	CellPixels int `yaml:"cell_pixels" json:"cell_pixels"`
	EdgePixels int `yaml:"edge_pixels" json:"edge_pixels"`
	// Blackout fills excluded zones; otherwise only their outline is drawn.
	Blackout bool `yaml:"blackout" json:"blackout"`
	// Exclusions is indexed [x][y] in zones; non-zero marks an excluded zone.
	// Columns may be shorter than Height or empty; missing entries are not excluded.
	Exclusions [][]int `yaml:"exclusions" json:"exclusions"`
}

// Default returns the built-in canvas with its exclusion pattern.
func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Density:    DefaultDensity,
		CellPixels: DefaultCellPixels,
		EdgePixels: DefaultEdgePixels,
		Blackout:   true,
		Exclusions: copyMatrix(defaultExclusions),
	}
}

// Validate checks dimensions, density, pixel sizes and the exclusion matrix shape.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("canvas %dx%d: %w", c.Width, c.Height, ErrBadDimension)
	}
	if c.Density < 1 {
		return fmt.Errorf("density %d: %w", c.Density, ErrBadDensity)
	}
	if c.EdgePixels < 1 || c.CellPixels <= c.EdgePixels {
		return fmt.Errorf("cell %dpx, edge %dpx: %w", c.CellPixels, c.EdgePixels, ErrBadPixels)
	}
	if len(c.Exclusions) > c.Width {
		return fmt.Errorf("%d columns for width %d: %w", len(c.Exclusions), c.Width, ErrExclusionOutOfBounds)
	}
	for x, col := range c.Exclusions {
		if len(col) > c.Height {
			return fmt.Errorf("column %d has %d rows for height %d: %w", x, len(col), c.Height, ErrExclusionOutOfBounds)
		}
	}
	return nil
}

// GridWidth returns the canvas width in cells.
func (c Config) GridWidth() int { return c.Width * c.Density }

// GridHeight returns the canvas height in cells.
func (c Config) GridHeight() int { return c.Height * c.Density }

// ZonePixels returns the drawn size of one zone.
func (c Config) ZonePixels() int { return c.CellPixels * c.Density }

// LoadConfig reads a YAML or JSON config file over Default() and validates it.
// Unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	clean := filepath.Clean(path)
	switch ext := filepath.Ext(clean); ext {
	case ".yaml", ".yml", ".json":
	default:
		return Config{}, fmt.Errorf("config extension %q: %w", ext, ErrConfigFile)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return Config{}, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("config is %d bytes (max %d): %w", info.Size(), maxConfigSize, ErrConfigFile)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML or JSON bytes over Default() and validates the result.
// An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func copyMatrix(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i, row := range m {
		out[i] = append([]int(nil), row...)
	}
	return out
}
