// Package kruskal carves a perfect maze out of a grid graph with randomized
// Kruskal's algorithm.
//
// What & Why
//
//   - A perfect maze is a spanning tree of the cell graph: exactly one path
//     between any two cells. Running Kruskal's algorithm over the candidate
//     connections in uniformly random order (instead of sorted by weight)
//     yields such a tree.
//
// Algorithm (Generate)
//
//  1. Copy every input cell into an empty result grid and register it as a
//     singleton in a fresh dsf.Forest.
//  2. While candidates remain, draw one uniformly at random and remove it
//     (sampling without replacement, so every connection is considered once).
//     If its endpoints lie in different components, keep it and merge them;
//     otherwise discard it because it would close a cycle.
//  3. Stop when the candidate list is exhausted.
//
// A disconnected input is not an error: the result is a spanning forest with
// n-k connections for n cells in k components.
//
// Determinism
//
//   - All randomness comes from one *rand.Rand supplied via WithSeed or
//     WithRand. Without options a fixed default seed is used, so equal inputs
//     give equal mazes.
//   - Input order matters only through grid.Grid's deterministic insertion order.
//
// Complexity
//
//   - Time: O(V + E·α(V)). Memory: O(V + E).
//
// Errors
//
//   - ErrNilGrid: Generate or Components called with a nil grid.
//
// Option constructors panic on nil arguments; Generate itself never panics.
package kruskal
