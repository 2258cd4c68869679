// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs() and Nodes() return insertion order.
//   - SortedNodeIDs() returns IDs ascending.
//
// Concurrency:
//   - All stores are guarded by g.mu; mutators take the write lock.
package core

import (
	"fmt"
	"sort"
)

// AddNode creates a node with the given ID and attributes.
//
// Implementation:
//   - Stage 1: Reject negative IDs (ErrInvalidID).
//   - Stage 2: Under the write lock, reject existing IDs (ErrDuplicateNode).
//   - Stage 3: Build the Node with defaults, apply options, register it with
//     an empty adjacency set shared with the node's neighbor set.
//
// Errors:
//   - ErrInvalidID: if id < 0.
//   - ErrDuplicateNode: if id is already present.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func (g *Graph) AddNode(id int, opts ...NodeOption) (*Node, error) {
	if id < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}

	n := &Node{ID: id, Name: DefaultName(id)}
	var opt NodeOption
	for _, opt = range opts {
		opt(n)
	}

	// The adjacency bucket and the node's neighbor set are the same map,
	// so invariant 4 cannot drift.
	adj := make(map[int]struct{})
	n.neighbors = adj
	g.nodes[id] = n
	g.adjacency[id] = adj
	g.order = append(g.order, id)

	return n, nil
}

// UpdateNode overwrites every attribute set in upd.
//
// Errors:
//   - ErrNodeNotFound: if id is absent.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) UpdateNode(id int, upd NodeUpdate) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	if upd.Name != nil {
		n.Name = *upd.Name
		if n.Name == "" {
			n.Name = DefaultName(id)
		}
	}
	if upd.Activity != nil {
		n.Activity = *upd.Activity
	}
	if upd.Interaction != nil {
		n.Interaction = *upd.Interaction
	}
	if upd.ConnectionCount != nil {
		n.ConnectionCount = *upd.ConnectionCount
	}

	return nil
}

// RemoveNode deletes a node and all incident edges.
//
// Implementation:
//   - Stage 1: Verify presence (ErrNodeNotFound).
//   - Stage 2: Remove every incident edge through the edge-removal path, which
//     keeps both adjacency sets symmetric.
//   - Stage 3: Drop the node, its adjacency bucket and its order slot.
//
// Complexity:
//   - Time O(deg(v) + V) (order slot removal is linear), Space O(deg(v)).
func (g *Graph) RemoveNode(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	// Snapshot first: removeEdgeLocked mutates the set we would be ranging over.
	incident := make([]int, 0, len(g.adjacency[id]))
	for nb := range g.adjacency[id] {
		incident = append(incident, nb)
	}
	for _, nb := range incident {
		g.removeEdgeLocked(EdgeKey{Lo: min(id, nb), Hi: max(id, nb)})
	}

	delete(g.nodes, id)
	delete(g.adjacency, id)
	for i, oid := range g.order {
		if oid == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return nil
}

// HasNode reports whether id exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns the live node record for id.
// The pointer is shared with the graph; mutate attributes through UpdateNode.
func (g *Graph) Node(id int) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return n, nil
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.order))
	copy(out, g.order)

	return out
}

// SortedNodeIDs returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) SortedNodeIDs() []int {
	ids := g.NodeIDs()
	sort.Ints(ids)

	return ids
}

// Nodes returns the node records in insertion order.
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}
