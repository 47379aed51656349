package layout

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// BuildGrid constructs the full adjacency graph of a width×height cell grid
// minus the excluded cells.
//
// Pass 1 adds a cell for every in-bounds coordinate not in excluded, x-major.
// Pass 2 walks the cells in insertion order and links each to every in-bounds
// neighbor that exists and is not linked yet. The first grid error aborts the
// build.
//
// Complexity: O(W·H) time and memory.
func BuildGrid(width, height int, excluded KeySet) (*grid.Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("BuildGrid(%d, %d): %w", width, height, ErrBadDimension)
	}

	g := grid.NewWithCapacity(width*height, 2*width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := grid.NewCell(x, y)
			if excluded.Has(c) {
				continue
			}
			if err := g.AddCell(c); err != nil {
				return nil, fmt.Errorf("BuildGrid: %w", err)
			}
		}
	}

	for _, c := range g.Cells() {
		for nc := range c.NeighborCoordinates(width, height) {
			if !g.HasCell(nc) {
				continue
			}
			linked, err := g.HasConnection(c, nc)
			if err != nil {
				return nil, fmt.Errorf("BuildGrid: %w", err)
			}
			if linked {
				continue
			}
			n, err := g.GetCell(nc)
			if err != nil {
				return nil, fmt.Errorf("BuildGrid: %w", err)
			}
			if err := g.AddConnection(c, n); err != nil {
				return nil, fmt.Errorf("BuildGrid: %w", err)
			}
		}
	}
	return g, nil
}

// Build validates cfg and constructs its grid graph.
func Build(cfg Config) (*grid.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	return BuildGrid(cfg.GridWidth(), cfg.GridHeight(), cfg.ExcludedCells())
}
