package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// ExampleGrid builds a 2×1 strip and shows that membership checks ignore
// the stored orientation while keys do not.
func ExampleGrid() {
	g := grid.New()
	a, b := grid.NewCell(0, 0), grid.NewCell(1, 0)
	_ = g.AddCell(a)
	_ = g.AddCell(b)
	_ = g.AddConnection(a, b)

	ab, _ := g.HasConnection(a, b)
	ba, _ := g.HasConnection(b.Key(), a.Coordinate())
	fmt.Println(ab, ba)
	fmt.Println(g.Connections()[0])

	err := g.AddConnection(b, a)
	fmt.Println(errors.Is(err, grid.ErrDuplicateEntity))

	// Output:
	// true true
	// 0cells,0cells->1cells,0cells
	// true
}

// ExampleCell_NeighborCoordinates lists the in-bounds neighbors of a corner cell.
func ExampleCell_NeighborCoordinates() {
	for c := range grid.NewCell(0, 2).NeighborCoordinates(3, 3) {
		fmt.Println(c)
	}
	// Output:
	// 1cells,2cells
	// 0cells,1cells
}
