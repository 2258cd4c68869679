// Package bfs provides breadth-first search over a core.Graph,
// returning the visit order, hop distances and parent links.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence (each reachable node exactly once)
//   - Depth: node → hops from start
//   - Parent: node → predecessor in the BFS tree
//   - Optional hook OnVisit (may abort with an error), neighbor filter and
//     MaxDepth limit.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs ascending and BFS enqueues them in that
//	order, so for nodes {1,2,3} with edges {(1,2),(1,3)}, BFS from 1 is
//	always [1 2 3]. Repeated calls are independent and return equal results.
//
// Complexity
//
//	Time O(V + E log d), Memory O(V).
//
// Errors
//
//	ErrGraphNil, ErrStartNotFound (matches core.ErrNodeNotFound),
//	ErrOptionViolation, or the wrapped OnVisit error.
package bfs
