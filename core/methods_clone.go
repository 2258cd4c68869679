// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone preserves insertion order of nodes.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// cloneNode copies attribute maps so the clone never aliases the source.
func cloneNode(n *Node) *Node {
	c := &Node{
		ID:              n.ID,
		Name:            n.Name,
		Activity:        n.Activity,
		Interaction:     n.Interaction,
		ConnectionCount: n.ConnectionCount,
	}
	if n.Extras != nil {
		c.Extras = make(map[string]float64, len(n.Extras))
		for k, v := range n.Extras {
			c.Extras[k] = v
		}
	}
	if n.Labels != nil {
		c.Labels = make(map[string]string, len(n.Labels))
		for k, v := range n.Labels {
			c.Labels[k] = v
		}
	}

	return c
}

// CloneEmpty returns a new Graph with copies of all nodes but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cloneNodesLocked(nil)
}

// cloneNodesLocked copies the nodes accepted by keep (all when keep is nil),
// preserving insertion order. Caller holds at least the read lock.
func (g *Graph) cloneNodesLocked(keep func(id int) bool) *Graph {
	out := NewGraph()
	for _, id := range g.order {
		if keep != nil && !keep(id) {
			continue
		}
		c := cloneNode(g.nodes[id])
		adj := make(map[int]struct{})
		c.neighbors = adj
		out.nodes[id] = c
		out.adjacency[id] = adj
		out.order = append(out.order, id)
	}

	return out
}

// Clone returns a deep copy of the Graph: nodes, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneNodesLocked(nil)
	for key, e := range g.edges {
		out.edges[key] = &Edge{U: e.U, V: e.V, Weight: e.Weight}
		out.adjacency[key.Lo][key.Hi] = struct{}{}
		out.adjacency[key.Hi][key.Lo] = struct{}{}
	}

	return out
}

// Clear removes all nodes and edges.
// Complexity: O(1) (old maps are released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[int]*Node)
	g.edges = make(map[EdgeKey]*Edge)
	g.adjacency = make(map[int]map[int]struct{})
	g.order = nil
}
