// Package grid models a rectangular maze lattice as an undirected graph.
//
// What:
//
//   - Coordinate: an immutable (x, y) position tagged with a Unit (cells or
//     physical zones). Two coordinates are equal iff their canonical Key is equal,
//     so a cell coordinate never matches a physical one at the same numbers.
//   - Cell: a maze node owning one cell-unit Coordinate.
//   - Connection: an unordered pair of adjacent cells stored in one orientation.
//   - Grid: the container for cells and connections. The same type holds both
//     the full adjacency graph and the spanning tree carved out of it.
//
// Identity:
//
//   - Cells, coordinates and keys all implement Keyed, so lookups accept any of
//     them ("cell or key" in one argument).
//   - A Connection's key is orientation-sensitive ("a->b" differs from "b->a"),
//     while membership checks test both orientations.
//
// Errors:
//
//   - ErrInvalidArgument: nil/empty reference, unregistered endpoint in a
//     membership check, or a self-loop.
//   - ErrUnknownEntity:   AddConnection endpoint was never added.
//   - ErrDuplicateEntity: cell or connection (either orientation) already present.
//   - ErrNotFound:        GetCell of an absent cell.
//
// Complexity:
//
//   - HasCell, GetCell, AddCell, HasConnection, AddConnection: O(1) average.
//   - Cells, Connections: O(V) and O(E), insertion order.
//   - Components: O(V + E).
//
// Grid is not safe for concurrent mutation; each generation run owns its grids.
package grid
