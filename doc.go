// Package lvmaze carves perfect mazes out of a rectangular canvas that may
// have zones cut away from it.
//
// 🚀 What is lvmaze?
//
//	A small, deterministic, seedable pipeline:
//		• Canvas: zones, density and an exclusion matrix (YAML or JSON)
//		• Grid: cells on integer coordinates and 4-neighbour connections
//		• Disjoint-set forest: generic union-find with path splitting
//		• Kruskal: random spanning tree (or forest) of the grid graph
//		• Render: SVG and PNG output with blacked-out or outlined zones
//
// Under the hood, everything is organized in subpackages:
//
//	grid/      Coordinate, Cell, Connection and the Grid container
//	dsf/       Forest[K, T], a keyed disjoint-set forest
//	kruskal/   Generate (the maze) and Components
//	layout/    canvas Config, exclusions and grid construction
//	render/    geometry, SVG and PNG writers
//	cmd/       the lvmaze command
//
// Quick ASCII example (2×2 grid, one of its four spanning trees):
//
//	    A───B
//	    │
//	    C───D
//
//	every cell is reachable from every other by exactly one path.
//
//	go install github.com/katalvlaran/lvmaze/cmd/lvmaze@latest
package lvmaze
