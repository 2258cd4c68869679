package mst

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

// Prim computes the maximum-weight spanning tree of g by growing it from root.
//
// Error Conditions:
//   - ErrGraphNil, ErrEmptyGraph.
//   - ErrRootNotFound: root is not a node of g.
//   - ErrDisconnected: some node is unreachable from root.
//
// Candidate edges sit in a heap ordered by weight descending, then canonical key;
// stale candidates (both ends already in the tree) are skipped on pop.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(g *core.Graph, root int) ([]core.Edge, float64, error) {
	res, err := prim(g, root, false)
	if err != nil {
		return nil, 0, err
	}

	return res.Edges, res.Total, nil
}

func prim(g *core.Graph, root int, forest bool) (Result, error) {
	ids, err := check(g)
	if err != nil {
		return Result{}, err
	}
	if !g.HasNode(root) {
		return Result{}, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	p := &primRunner{
		g:       g,
		visited: make(map[int]bool, len(ids)),
		res:     Result{Edges: make([]core.Edge, 0, len(ids)-1)},
	}
	p.grow(root)
	if forest {
		for _, id := range ids {
			if !p.visited[id] {
				p.grow(id)
			}
		}
	}

	if len(p.res.Edges) < len(ids)-p.res.Trees {
		return Result{}, ErrDisconnected
	}

	return p.res, nil
}

// primRunner accumulates one tree per grow call.
type primRunner struct {
	g       *core.Graph
	visited map[int]bool
	pq      edgePQ
	res     Result
}

func (p *primRunner) grow(root int) {
	p.res.Trees++
	p.pq = p.pq[:0]
	p.visit(root)

	for p.pq.Len() > 0 {
		e := heap.Pop(&p.pq).(*core.Edge)
		next := e.V
		if p.visited[e.V] {
			next = e.U
		}
		if p.visited[next] {
			continue
		}
		p.res.Edges = append(p.res.Edges, *e)
		p.res.Total += e.Weight
		p.visit(next)
	}
}

// visit marks id as in the tree and pushes its edges to unvisited neighbors.
func (p *primRunner) visit(id int) {
	p.visited[id] = true
	for _, nb := range p.g.Neighbors(id) {
		if p.visited[nb] {
			continue
		}
		if e, err := p.g.Edge(id, nb); err == nil {
			heap.Push(&p.pq, e)
		}
	}
}

// edgePQ implements heap.Interface for a max-heap of *core.Edge, ordered by
// Weight, then by ascending canonical key.
type edgePQ []*core.Edge

func (pq edgePQ) Len() int { return len(pq) }

func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight > pq[j].Weight
	}
	if pq[i].U != pq[j].U {
		return pq[i].U < pq[j].U
	}
	return pq[i].V < pq[j].V
}

func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x any) { *pq = append(*pq, x.(*core.Edge)) }

func (pq *edgePQ) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
