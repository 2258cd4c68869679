// Package centrality ranks nodes of a core.Graph by degree.
//
// Ordering is degree descending, then node ID ascending, so rankings are
// stable across runs and insertion orders.
package centrality

import (
	"sort"

	"github.com/katalvlaran/sociograph/core"
)

// Score pairs a node with its degree.
type Score struct {
	ID     int `json:"id"`
	Degree int `json:"degree"`
}

// Ranking returns every node's Score, best first.
// Complexity: O(V log V).
func Ranking(g *core.Graph) []Score {
	if g == nil {
		return []Score{}
	}
	ids := g.NodeIDs()
	out := make([]Score, 0, len(ids))
	for _, id := range ids {
		out = append(out, Score{ID: id, Degree: g.Degree(id)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Degree != out[j].Degree {
			return out[i].Degree > out[j].Degree
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Degree returns the top min(topN, V) entries of Ranking.
// topN <= 0 yields an empty slice.
func Degree(g *core.Graph, topN int) []Score {
	if topN <= 0 {
		return []Score{}
	}
	all := Ranking(g)
	if topN < len(all) {
		all = all[:topN]
	}

	return all
}

// Normalized returns degree/(V-1) per node, the fraction of other people a
// node is directly connected to. Graphs with fewer than two nodes map every
// node to 0.
func Normalized(g *core.Graph) map[int]float64 {
	out := make(map[int]float64)
	if g == nil {
		return out
	}
	ids := g.NodeIDs()
	n := len(ids)
	for _, id := range ids {
		if n <= 1 {
			out[id] = 0
			continue
		}
		out[id] = float64(g.Degree(id)) / float64(n-1)
	}

	return out
}
