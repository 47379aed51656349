package layout

import "errors"

var (
	// ErrBadDimension indicates a non-positive canvas or grid dimension.
	ErrBadDimension = errors.New("layout: dimensions must be positive")

	// ErrBadDensity indicates fewer than one cell per zone.
	ErrBadDensity = errors.New("layout: density must be at least 1")

	// ErrBadPixels indicates pixel sizes that cannot be drawn
	// (edge width must be positive and smaller than the cell width).
	ErrBadPixels = errors.New("layout: invalid pixel sizes")

	// ErrExclusionOutOfBounds indicates the exclusion matrix is larger than the canvas.
	ErrExclusionOutOfBounds = errors.New("layout: exclusion matrix exceeds canvas")

	// ErrConfigFile indicates a config path that cannot be used (extension or size).
	ErrConfigFile = errors.New("layout: unusable config file")
)
