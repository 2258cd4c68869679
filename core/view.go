// File: view.go
// Role: Non-mutating graph views (copies of the topology with altered properties).
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

// UniformView returns a copy of g whose edges all carry weight w.
// With w == 1 weighted shortest paths become hop counts.
// The input graph is not mutated. Fails with ErrBadWeight for non-finite w.
//
// Complexity: O(V + E).
func UniformView(g *Graph, w float64) (*Graph, error) {
	if err := checkWeight(w); err != nil {
		return nil, err
	}
	out := g.Clone()
	for _, e := range out.edges {
		e.Weight = w
	}

	return out, nil
}

// InducedSubgraph keeps only the nodes listed in keep and the edges whose
// endpoints are both kept. Unknown IDs in keep are ignored.
// Node order follows the source graph's insertion order.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep []int) *Graph {
	set := make(map[int]struct{}, len(keep))
	for _, id := range keep {
		set[id] = struct{}{}
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := g.cloneNodesLocked(func(id int) bool {
		_, ok := set[id]
		return ok
	})
	for key, e := range g.edges {
		if _, ok := out.nodes[key.Lo]; !ok {
			continue
		}
		if _, ok := out.nodes[key.Hi]; !ok {
			continue
		}
		out.edges[key] = &Edge{U: e.U, V: e.V, Weight: e.Weight}
		out.adjacency[key.Lo][key.Hi] = struct{}{}
		out.adjacency[key.Hi][key.Lo] = struct{}{}
	}

	return out
}
