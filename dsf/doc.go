// Package dsf implements a disjoint-set forest (union-find) keyed by the
// canonical key of its elements.
//
// Parent pointers and ranks are stored by key and resolved back to elements
// through a side table, so callers always get the registered element back
// from Find regardless of which equal-keyed value they passed in.
//
//   - MakeSet registers a singleton (rank 0, its own representative).
//     Registering the same key twice fails with ErrDuplicateEntity.
//   - Find walks to the root iteratively with path splitting: every visited
//     node is re-pointed to its grandparent.
//   - Union links the lower-rank root under the higher-rank root. On a tie the
//     root of the first argument becomes the parent and its rank grows by one.
//
// Amortized cost of Find and Union is O(α(n)). The forest is not safe for
// concurrent use.
package dsf
