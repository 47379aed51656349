// Package render draws a generated maze.
//
// Every passage of the maze grid becomes a filled rectangle whose geometry is
// derived only from its two endpoint coordinates: a horizontal passage spans
// one cell plus one edge width horizontally, a vertical passage the same
// vertically, and both are inset by half the difference between the cell and
// edge widths so passages run through cell centres.
//
// Excluded zones are drawn either as solid squares (blackout) or as outline
// segments on the sides that face a non-excluded zone (border).
//
// Output formats:
//
//   - SVG via github.com/ajstarks/svgo, with classes "edge", "excluded-rect"
//     and "excluded-polyline" for styling.
//   - PNG via image/png, with an optional caption line set in basicfont.
package render
