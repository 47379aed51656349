package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/layout"
)

// captionHeight is the band added under the maze when a caption is set.
const captionHeight = 18

var (
	background = image.NewUniform(color.White)
	ink        = image.NewUniform(color.Black)
)

// Image rasterizes maze onto an RGBA canvas. A non-empty caption is written
// in a band below the canvas.
func Image(maze *grid.Grid, cfg layout.Config, caption string) (*image.RGBA, error) {
	rects, err := EdgeRects(maze, cfg.CellPixels, cfg.EdgePixels)
	if err != nil {
		return nil, fmt.Errorf("Image: %w", err)
	}

	width, height := CanvasSize(cfg)
	total := height
	if caption != "" {
		total += captionHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, width, total))
	draw.Draw(img, img.Bounds(), background, image.Point{}, draw.Src)

	for _, r := range rects {
		fill(img, r)
	}
	if cfg.Blackout {
		for _, r := range BlackoutRects(cfg) {
			fill(img, r)
		}
	} else {
		for _, s := range BorderSegments(cfg) {
			// Segments are axis-aligned; draw them one pixel thick.
			fill(img, Rect{X: s.X1, Y: s.Y1, W: max(s.X2-s.X1, 1), H: max(s.Y2-s.Y1, 1)})
		}
	}

	if caption != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  ink,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, height+captionHeight-5),
		}
		d.DrawString(caption)
	}
	return img, nil
}

// PNG writes maze as a PNG image; see Image.
func PNG(w io.Writer, maze *grid.Grid, cfg layout.Config, caption string) error {
	img, err := Image(maze, cfg, caption)
	if err != nil {
		return fmt.Errorf("PNG: %w", err)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("PNG: %w", err)
	}
	return nil
}

func fill(img *image.RGBA, r Rect) {
	draw.Draw(img, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H), ink, image.Point{}, draw.Src)
}
