// Package layout turns a canvas description into the full maze grid graph.
//
// A Config describes the canvas in coarse zones (Width × Height), how many
// cells fit along one zone edge (Density), pixel sizes for renderers, and an
// exclusion matrix of zones that must stay out of the maze.
//
// Pipeline:
//
//	Config ──ExcludedCells──▶ KeySet ──BuildGrid──▶ *grid.Grid (every in-bounds,
//	                                                non-excluded cell connected
//	                                                to its present neighbors)
//
// BuildGrid follows a two-pass protocol: first every non-excluded cell is
// added, then each cell's in-bounds neighbors are linked when the neighbor
// exists and the pair is not linked yet. Excluded coordinates never become
// cells, so they never receive connections. Any grid error aborts the build.
//
// Config files are YAML (JSON is accepted as a YAML subset). Fields omitted in
// a file keep their Default() values.
package layout
