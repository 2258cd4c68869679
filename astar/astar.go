// Package astar implements A* best-first search between two nodes of a
// core.Graph.
//
// Priority is f = g + h where g is the accumulated edge weight from start and
// h the Heuristic estimate to target. The search ends when target is popped,
// so unlike Dijkstra it does not settle the whole component.
//
// Complexity (Zero heuristic): Time O((V + E) log V), Space O(V + E).
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/dijkstra"
)

// AStar finds a minimum-cost path from start to target.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrInvalidNode if start or target is missing (matches core.ErrNodeNotFound).
//   - ErrNegativeWeight if any edge weight is negative.
//   - ErrHeuristicNil for WithHeuristic(nil).
func AStar(g *core.Graph, start, target int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, start)
	}
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, target)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d--%d weight=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	s := newSearch(g, start, target, cfg.Heuristic)
	s.run()

	return &Result{
		Start:  start,
		Target: target,
		Dist:   s.dist,
		Prev:   s.prev,
		Path:   dijkstra.ReconstructPath(s.prev, start, target),
	}, nil
}

// search holds the mutable state of one query.
type search struct {
	g       *core.Graph
	target  int
	h       Heuristic
	dist    map[int]float64
	prev    map[int]int
	settled map[int]bool
	open    openSet
}

func newSearch(g *core.Graph, start, target int, h Heuristic) *search {
	ids := g.NodeIDs()
	s := &search{
		g:       g,
		target:  target,
		h:       h,
		dist:    make(map[int]float64, len(ids)),
		prev:    make(map[int]int),
		settled: make(map[int]bool),
	}
	for _, id := range ids {
		s.dist[id] = math.Inf(1)
	}
	s.dist[start] = 0
	heap.Push(&s.open, &openItem{id: start, f: h(start, target)})

	return s
}

func (s *search) run() {
	var (
		item *openItem
		w    float64
		gc   float64
		ok   bool
	)
	for s.open.Len() > 0 {
		item = heap.Pop(&s.open).(*openItem)
		if s.settled[item.id] {
			continue
		}
		if item.id == s.target {
			return
		}
		s.settled[item.id] = true

		for _, v := range s.g.Neighbors(item.id) {
			if s.settled[v] {
				continue
			}
			if w, ok = s.g.EdgeWeight(item.id, v); !ok {
				continue
			}
			gc = s.dist[item.id] + w
			if gc >= s.dist[v] {
				continue
			}
			s.dist[v] = gc
			s.prev[v] = item.id
			heap.Push(&s.open, &openItem{id: v, f: gc + s.h(v, s.target)})
		}
	}
}

// openItem is a frontier entry keyed by f = g + h.
type openItem struct {
	id int
	f  float64
}

// openSet is a min-heap on f, ties by smaller ID. Stale entries are skipped on pop.
type openSet []*openItem

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].id < o[j].id
}
func (o openSet) Swap(i, j int)       { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x interface{}) { *o = append(*o, x.(*openItem)) }
func (o *openSet) Pop() interface{} {
	old := *o
	n := len(old)
	it := old[n-1]
	*o = old[:n-1]

	return it
}
