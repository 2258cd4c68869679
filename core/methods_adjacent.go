// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, Degree, Stats) and invariant checks.
// Determinism:
//   - Neighbors() returns IDs sorted ascending.
// Concurrency:
//   - Read-only; hold the read lock for the duration of each call.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the neighbor IDs of id in ascending order.
//
// Behavior highlights:
//   - Returns a fresh slice; callers cannot reach internal state through it.
//   - Unknown id yields an empty (non-nil) slice rather than an error.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := g.adjacency[id]
	out := make([]int, 0, len(adj))
	for nb := range adj {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out
}

// Degree returns |adjacency[id]|, or 0 for an unknown id.
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// Stats produces a snapshot of graph size and degree distribution.
//
// Density is 2E / (V(V-1)) and is 0 for graphs with fewer than two nodes.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{Nodes: len(g.nodes), Edges: len(g.edges)}
	if s.Nodes == 0 {
		return s
	}

	s.MinDegree = -1
	total := 0
	for _, adj := range g.adjacency {
		d := len(adj)
		total += d
		if s.MinDegree < 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	s.AvgDegree = float64(total) / float64(s.Nodes)
	if s.Nodes > 1 {
		s.Density = 2 * float64(s.Edges) / float64(s.Nodes*(s.Nodes-1))
	}

	return s
}

// Validate checks the four store invariants:
//
//  1. every edge endpoint is a node and appears in the other's adjacency set;
//  2. every adjacency key is a node;
//  3. no self-loops;
//  4. each node's neighbor set equals its adjacency set.
//
// Adjacency entries without a backing edge are also reported.
// The first violation is returned wrapped in ErrInvariant.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for key, e := range g.edges {
		if key.Lo >= key.Hi || e.U != key.Lo || e.V != key.Hi {
			return fmt.Errorf("%w: edge %v stored under key %v", ErrInvariant, e, key)
		}
		if _, ok := g.nodes[key.Lo]; !ok {
			return fmt.Errorf("%w: edge %v has missing endpoint %d", ErrInvariant, e, key.Lo)
		}
		if _, ok := g.nodes[key.Hi]; !ok {
			return fmt.Errorf("%w: edge %v has missing endpoint %d", ErrInvariant, e, key.Hi)
		}
		if _, ok := g.adjacency[key.Lo][key.Hi]; !ok {
			return fmt.Errorf("%w: %d missing from adjacency of %d", ErrInvariant, key.Hi, key.Lo)
		}
		if _, ok := g.adjacency[key.Hi][key.Lo]; !ok {
			return fmt.Errorf("%w: %d missing from adjacency of %d", ErrInvariant, key.Lo, key.Hi)
		}
	}

	for id, adj := range g.adjacency {
		n, ok := g.nodes[id]
		if !ok {
			return fmt.Errorf("%w: adjacency entry for unknown node %d", ErrInvariant, id)
		}
		for nb := range adj {
			if nb == id {
				return fmt.Errorf("%w: self-loop on %d", ErrInvariant, id)
			}
			if _, ok = g.edges[EdgeKey{Lo: min(id, nb), Hi: max(id, nb)}]; !ok {
				return fmt.Errorf("%w: adjacency %d->%d has no edge", ErrInvariant, id, nb)
			}
			if _, ok = n.neighbors[nb]; !ok {
				return fmt.Errorf("%w: node %d neighbor set lacks %d", ErrInvariant, id, nb)
			}
		}
		if len(n.neighbors) != len(adj) {
			return fmt.Errorf("%w: node %d neighbor set size %d != adjacency size %d",
				ErrInvariant, id, len(n.neighbors), len(adj))
		}
	}

	if len(g.adjacency) != len(g.nodes) || len(g.order) != len(g.nodes) {
		return fmt.Errorf("%w: %d nodes, %d adjacency entries, %d ordered ids",
			ErrInvariant, len(g.nodes), len(g.adjacency), len(g.order))
	}

	return nil
}
