package kruskal

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/dsf"
	"github.com/katalvlaran/lvmaze/grid"
)

// Components counts the connected components of g using a disjoint-set forest.
// An empty grid has zero components.
func Components(g *grid.Grid) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	forest := dsf.NewWithCapacity[grid.Key, grid.Cell](g.CellCount())
	for _, c := range g.Cells() {
		if err := forest.MakeSet(c); err != nil {
			return 0, fmt.Errorf("Components: %w", err)
		}
	}
	for _, e := range g.Connections() {
		if _, err := forest.Union(e.From, e.To); err != nil {
			return 0, fmt.Errorf("Components: %w", err)
		}
	}
	return forest.Sets(), nil
}
