package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
)

func TestComponents_Lattice(t *testing.T) {
	g := lattice(t, 4, 3)
	comps := g.Components()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 12)
}

// TestComponents_SplitColumn removes the middle column of a 3×3 grid,
// leaving two 1×3 strips.
func TestComponents_SplitColumn(t *testing.T) {
	g := lattice(t, 3, 3,
		grid.CellCoordinate(1, 0), grid.CellCoordinate(1, 1), grid.CellCoordinate(1, 2))
	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 3)
	assert.Len(t, comps[1], 3)
	assert.Equal(t, 0, comps[0][0].Coordinate().X)
	assert.Equal(t, 2, comps[1][0].Coordinate().X)
}

func TestComponents_EmptyAndIsolated(t *testing.T) {
	assert.Empty(t, grid.New().Components())

	g := grid.New()
	require.NoError(t, g.AddCell(grid.NewCell(0, 0)))
	require.NoError(t, g.AddCell(grid.NewCell(5, 5)))
	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []grid.Cell{grid.NewCell(0, 0)}, comps[0])
	assert.Equal(t, []grid.Cell{grid.NewCell(5, 5)}, comps[1])
}
