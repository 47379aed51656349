package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/layout"
)

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}

// SVG writes maze as an SVG document sized to cfg's canvas.
func SVG(w io.Writer, maze *grid.Grid, cfg layout.Config) error {
	rects, err := EdgeRects(maze, cfg.CellPixels, cfg.EdgePixels)
	if err != nil {
		return fmt.Errorf("SVG: %w", err)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := CanvasSize(cfg)
	canvas.Start(width, height, `id="canvas"`)
	canvas.Rect(0, 0, width, height, "fill:white;stroke:black;stroke-width:1")

	canvas.Gid("maze")
	for _, r := range rects {
		canvas.Rect(r.X, r.Y, r.W, r.H, `class="edge"`, "fill:black")
	}
	canvas.Gend()

	canvas.Gid("exclusions")
	if cfg.Blackout {
		for _, r := range BlackoutRects(cfg) {
			canvas.Rect(r.X, r.Y, r.W, r.H, `class="excluded-rect"`, "fill:black")
		}
	} else {
		for _, s := range BorderSegments(cfg) {
			canvas.Polyline([]int{s.X1, s.X2}, []int{s.Y1, s.Y2}, `class="excluded-polyline"`, "stroke:black;fill:none")
		}
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("SVG: %w", ew.err)
	}
	return nil
}
