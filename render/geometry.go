package render

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/layout"
)

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H int
}

// Segment is a straight pixel line from (X1, Y1) to (X2, Y2).
type Segment struct {
	X1, Y1, X2, Y2 int
}

// EdgeRect returns the pixel rectangle of passage e.
func EdgeRect(e grid.Connection, cellPx, edgePx int) (Rect, error) {
	a, b := e.From.Coordinate(), e.To.Coordinate()
	inset := (cellPx - edgePx) / 2
	r := Rect{
		X: min(a.X, b.X)*cellPx + inset,
		Y: min(a.Y, b.Y)*cellPx + inset,
	}
	switch {
	case e.Horizontal():
		r.W, r.H = cellPx+edgePx, edgePx
	case e.Vertical():
		r.W, r.H = edgePx, cellPx+edgePx
	default:
		return Rect{}, fmt.Errorf("EdgeRect(%s): %w", e, ErrNotAdjacent)
	}
	return r, nil
}

// EdgeRects returns the rectangles of every passage of maze, in connection order.
func EdgeRects(maze *grid.Grid, cellPx, edgePx int) ([]Rect, error) {
	if maze == nil {
		return nil, ErrNilGrid
	}
	conns := maze.Connections()
	rects := make([]Rect, 0, len(conns))
	for _, e := range conns {
		r, err := EdgeRect(e, cellPx, edgePx)
		if err != nil {
			return nil, err
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// BlackoutRects returns one square per excluded zone of cfg.
func BlackoutRects(cfg layout.Config) []Rect {
	size := cfg.ZonePixels()
	zones := cfg.ExcludedZones()
	rects := make([]Rect, 0, len(zones))
	for _, z := range zones {
		rects = append(rects, Rect{X: z.X * size, Y: z.Y * size, W: size, H: size})
	}
	return rects
}

// BorderSegments returns the outline of the excluded regions of cfg: for each
// excluded zone, the sides (left, right, top, bottom) whose neighbor zone is
// not excluded.
func BorderSegments(cfg layout.Config) []Segment {
	size := cfg.ZonePixels()
	var segs []Segment
	for _, z := range cfg.ExcludedZones() {
		x0, y0 := z.X*size, z.Y*size
		x1, y1 := x0+size, y0+size
		if !cfg.ZoneExcluded(z.X-1, z.Y) {
			segs = append(segs, Segment{x0, y0, x0, y1})
		}
		if !cfg.ZoneExcluded(z.X+1, z.Y) {
			segs = append(segs, Segment{x1, y0, x1, y1})
		}
		if !cfg.ZoneExcluded(z.X, z.Y-1) {
			segs = append(segs, Segment{x0, y0, x1, y0})
		}
		if !cfg.ZoneExcluded(z.X, z.Y+1) {
			segs = append(segs, Segment{x0, y1, x1, y1})
		}
	}
	return segs
}

// CanvasSize returns the pixel size of cfg's canvas.
func CanvasSize(cfg layout.Config) (w, h int) {
	return cfg.Width * cfg.ZonePixels(), cfg.Height * cfg.ZonePixels()
}
