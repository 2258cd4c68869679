// Package core provides the in-memory social network graph that every
// algorithm package in sociograph reads from.
//
// The Graph G = (V,E) is undirected, weighted and simple:
//
//   - Nodes are people, identified by non-negative integers and carrying
//     activity, interaction and connection-count features plus open
//     Extras/Labels maps for loader-supplied columns.
//   - Edges are stored once per unordered pair under the canonical key
//     (min(u,v), max(u,v)); self-loops are rejected with ErrSelfLoop.
//   - Adjacency sets are kept symmetric by every mutation; a node's neighbor
//     set and its adjacency bucket are the same set.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id int, opts ...NodeOption) (*Node, error)   // O(1)
//	UpdateNode(id int, upd NodeUpdate) error             // O(1)
//	RemoveNode(id int) error                             // O(deg + V)
//
//	// Edge lifecycle
//	AddEdge(u, v int, w float64) (*Edge, error)          // O(1), idempotent on the pair
//	UpdateEdgeWeight(u, v int, w float64) error          // O(1)
//	RemoveEdge(u, v int) error                           // O(1), absent edge is a no-op
//
//	// Query
//	Neighbors(id int) []int                              // sorted copy, unknown id → empty
//	HasEdge(u, v int) bool
//	EdgeWeight(u, v int) (float64, bool)
//	NodeIDs() []int                                      // insertion order
//	Edges() []*Edge                                      // sorted by key
//
//	// Maintenance
//	Clear(), Clone(), Validate(), Stats()
//
// Errors:
//
//	ErrInvalidID, ErrNodeNotFound, ErrDuplicateNode, ErrSelfLoop,
//	ErrEdgeNotFound, ErrBadWeight, ErrInvariant
//
// All errors are sentinels wrapped with context via %w; branch with errors.Is.
//
// Concurrency: a single RWMutex guards the stores, so individual calls are
// safe, but multi-step sequences (check then mutate) need external
// coordination. Algorithms only read the graph.
package core
