// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// weighted, undirected core.Graph.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring
//     stale entries on pop.
//   - Relaxation requires a strict improvement, so the first-found predecessor wins ties.
//   - Heap ties are broken by ascending node ID, which makes prev deterministic.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/sociograph/core"
)

// Dijkstra computes shortest distances from start to every node of g.
//
// Returns:
//
//   - dist: node ID → minimum distance; math.Inf(1) if unreachable. Every
//     node of g has an entry.
//   - prev: node ID → predecessor on one shortest path. The start node and
//     unreachable nodes have no entry.
//   - err:  ErrGraphNil, ErrStartNotFound, ErrNegativeWeight or an option error.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, start int, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate inputs
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	// 3) Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d--%d weight=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	r := newRunner(g, start, cfg)
	r.process()

	return r.dist, r.prev, nil
}

// ShortestPath returns the node sequence from start to target and its total
// weight. When target is unreachable the path is empty and the cost is +Inf.
func ShortestPath(g *core.Graph, start, target int, opts ...Option) ([]int, float64, error) {
	dist, prev, err := Dijkstra(g, start, opts...)
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[target]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %d", ErrTargetNotFound, target)
	}

	return ReconstructPath(prev, start, target), d, nil
}

// ReconstructPath walks prev backwards from target to start and returns the
// path in forward order. It returns [start] when target == start and an empty
// slice when target cannot be traced back to start.
//
// Complexity: O(path length).
func ReconstructPath(prev map[int]int, start, target int) []int {
	if target == start {
		return []int{start}
	}

	rev := []int{target}
	cur := target
	// a well-formed prev map reaches start in at most len(prev) steps
	for steps := 0; steps <= len(prev); steps++ {
		p, ok := prev[cur]
		if !ok {
			return []int{}
		}
		rev = append(rev, p)
		if p == start {
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}

			return rev
		}
		cur = p
	}

	return []int{}
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // read-only within Dijkstra
	options Options         // thresholds
	dist    map[int]float64 // node ID → current best distance from start
	prev    map[int]int     // node ID → predecessor on the shortest path
	visited map[int]bool    // settled nodes
	pq      nodePQ          // min-heap for lazy priority queue
}

// newRunner sets every distance to +Inf, the start to 0, and seeds the heap.
func newRunner(g *core.Graph, start int, cfg Options) *runner {
	ids := g.NodeIDs()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, len(ids)),
		prev:    make(map[int]int, len(ids)),
		visited: make(map[int]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}
	for _, id := range ids {
		r.dist[id] = math.Inf(1)
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	return r
}

// process pops the closest unsettled node until the heap drains or the
// remaining entries exceed MaxDistance.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)
		// stale entry
		if r.visited[item.id] || item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner) relax(u int) {
	var (
		w, nd float64
		ok    bool
	)
	for _, v := range r.g.Neighbors(u) {
		if r.visited[v] {
			continue
		}
		if w, ok = r.g.EdgeWeight(u, v); !ok || w >= r.options.InfEdgeThreshold {
			continue
		}
		nd = r.dist[u] + w
		if nd > r.options.MaxDistance || nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: nd})
	}
}

// nodeItem represents a node and its tentative distance from the start.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then id.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by smaller ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element; heap.Pop handles ordering.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
