package kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/dsf"
	"github.com/katalvlaran/lvmaze/grid"
)

// Generate returns a new grid holding every cell of g and a random spanning
// forest of g's connections. For a connected g the result is a perfect maze
// with CellCount()-1 connections.
//
// g is not modified. The returned grid shares no state with g.
//
// Complexity: O(V + E·α(V)) time, O(V + E) memory.
func Generate(g *grid.Grid, opts ...Option) (*grid.Grid, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := newConfig(opts...)

	cells := g.Cells()
	candidates := g.Connections() // fresh copy; consumed below

	tree := grid.NewWithCapacity(len(cells), max(len(cells)-1, 0))
	forest := dsf.NewWithCapacity[grid.Key, grid.Cell](len(cells))
	for _, c := range cells {
		if err := tree.AddCell(c); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		if err := forest.MakeSet(c); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	// Draw without replacement: swap the pick with the last live candidate
	// and shrink the live window.
	for n := len(candidates); n > 0; n-- {
		i := cfg.rng.Intn(n)
		e := candidates[i]
		candidates[i] = candidates[n-1]

		merged, err := forest.Union(e.From, e.To)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		if !merged {
			continue // would close a cycle
		}
		if err := tree.AddConnection(e.From, e.To); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		if cfg.onAccept != nil {
			cfg.onAccept(e)
		}
	}

	return tree, nil
}
