package render

import "errors"

var (
	// ErrNilGrid indicates a nil maze grid.
	ErrNilGrid = errors.New("render: grid is nil")

	// ErrNotAdjacent indicates a connection whose endpoints are not one step
	// apart along exactly one axis.
	ErrNotAdjacent = errors.New("render: connection endpoints are not adjacent")
)
