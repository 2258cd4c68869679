// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/UpdateEdgeWeight/RemoveEdge/HasEdge/
//       EdgeWeight/Edge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by canonical key (Lo, then Hi).
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v with weight w.
//
// Steps:
//  1. Build the canonical key (ErrSelfLoop if u == v) and check w (ErrBadWeight).
//  2. Both endpoints must exist (ErrNodeNotFound).
//  3. If the key is already present, overwrite its weight and return the
//     existing edge: re-adding a pair never duplicates it.
//  4. Otherwise store the edge and link both adjacency sets.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) (*Edge, error) {
	key, err := KeyOf(u, v)
	if err != nil {
		return nil, err
	}
	if err = checkWeight(w); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[u]; !ok {
		return nil, fmt.Errorf("%w: endpoint %d", ErrNodeNotFound, u)
	}
	if _, ok := g.nodes[v]; !ok {
		return nil, fmt.Errorf("%w: endpoint %d", ErrNodeNotFound, v)
	}

	if e, ok := g.edges[key]; ok {
		e.Weight = w

		return e, nil
	}

	e := &Edge{U: key.Lo, V: key.Hi, Weight: w}
	g.edges[key] = e
	g.adjacency[key.Lo][key.Hi] = struct{}{}
	g.adjacency[key.Hi][key.Lo] = struct{}{}

	return e, nil
}

// UpdateEdgeWeight sets the weight of an existing edge.
//
// Errors:
//   - ErrSelfLoop: if u == v.
//   - ErrBadWeight: if w is not finite.
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) UpdateEdgeWeight(u, v int, w float64) error {
	key, err := KeyOf(u, v)
	if err != nil {
		return err
	}
	if err = checkWeight(w); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[key]
	if !ok {
		return fmt.Errorf("%w: %d--%d", ErrEdgeNotFound, u, v)
	}
	e.Weight = w

	return nil
}

// RemoveEdge deletes the edge between u and v. Removing an absent edge is a
// silent no-op; only u == v is rejected (ErrSelfLoop), since no key exists for it.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	key, err := KeyOf(u, v)
	if err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.removeEdgeLocked(key)

	return nil
}

// removeEdgeLocked unlinks key from the edge store and both adjacency sets.
// Caller holds the write lock.
func (g *Graph) removeEdgeLocked(key EdgeKey) {
	if _, ok := g.edges[key]; !ok {
		return
	}
	delete(g.edges, key)
	if adj, ok := g.adjacency[key.Lo]; ok {
		delete(adj, key.Hi)
	}
	if adj, ok := g.adjacency[key.Hi]; ok {
		delete(adj, key.Lo)
	}
}

// HasEdge reports whether u and v are connected. u == v is always false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	key, err := KeyOf(u, v)
	if err != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[key]

	return ok
}

// EdgeWeight returns the weight of edge (u,v); the bool is false when no such edge exists.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v int) (float64, bool) {
	key, err := KeyOf(u, v)
	if err != nil {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[key]
	if !ok {
		return 0, false
	}

	return e.Weight, true
}

// Edge returns the live edge between u and v, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only; use UpdateEdgeWeight to change it.
func (g *Graph) Edge(u, v int) (*Edge, error) {
	key, err := KeyOf(u, v)
	if err != nil {
		return nil, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[key]
	if !ok {
		return nil, fmt.Errorf("%w: %d--%d", ErrEdgeNotFound, u, v)
	}

	return e, nil
}

// Edges returns all edges sorted by canonical key.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
