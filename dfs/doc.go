// Package dfs provides depth-first traversal of a core.Graph.
//
// The walk uses an explicit stack instead of recursion, so arbitrarily deep
// chains do not grow the goroutine stack. Neighbors are pushed in descending
// ID order; the smallest unvisited neighbor is therefore explored first and
// the visit order is fully deterministic.
//
// Typical uses: reachability checks, spanning-tree extraction (Result.Parent),
// and forest enumeration with WithFullTraversal.
//
//	order, err := dfs.Order(g, 1)
//
// Errors: ErrGraphNil, ErrStartNotFound, and wrapped OnVisit errors.
package dfs
