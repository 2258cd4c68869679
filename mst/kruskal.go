package mst

import (
	"sort"

	"github.com/katalvlaran/sociograph/core"
)

// Kruskal computes the maximum-weight spanning tree of g.
//
// Error Conditions:
//   - ErrGraphNil, ErrEmptyGraph.
//   - ErrDisconnected: g has more than one component.
//
// Steps:
//  1. Collect edges (already sorted by canonical key) and stable-sort them by
//     weight descending, so equal weights break by (Lo, Hi).
//  2. Union-find with path halving and union by rank over the node IDs.
//  3. Accept every edge joining two different sets; stop at |V|-1 edges.
//
// Complexity: O(E log E + α(V)·E). Memory: O(V + E).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	res, err := kruskal(g, false)
	if err != nil {
		return nil, 0, err
	}

	return res.Edges, res.Total, nil
}

func kruskal(g *core.Graph, forest bool) (Result, error) {
	ids, err := check(g)
	if err != nil {
		return Result{}, err
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight > edges[j].Weight
	})

	ds := newDisjointSet(ids)
	res := Result{Edges: make([]core.Edge, 0, len(ids)-1)}
	for _, e := range edges {
		if !ds.union(e.U, e.V) {
			continue
		}
		res.Edges = append(res.Edges, *e)
		res.Total += e.Weight
		if len(res.Edges) == len(ids)-1 {
			break
		}
	}

	res.Trees = len(ids) - len(res.Edges)
	if res.Trees > 1 && !forest {
		return Result{}, ErrDisconnected
	}

	return res, nil
}

// disjointSet is a union-find over node IDs.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(ids []int) *disjointSet {
	ds := &disjointSet{
		parent: make(map[int]int, len(ids)),
		rank:   make(map[int]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

// find returns the set representative, halving the path on the way.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}
