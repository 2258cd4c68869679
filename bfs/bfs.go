// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, hop distances and parent links.
//
// Neighbors of each dequeued node are enqueued in ascending ID order, so
// the visit sequence is a pure function of the graph and the start node.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	seen  map[int]bool
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error (wrapped).
// The graph is only read.
//
// Complexity: O(V + E log d); neighbor lists are sorted per node.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		seen:  make(map[int]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.discover(start, 0)

	return w.res, w.loop()
}

// Order is a convenience wrapper returning only the visit sequence.
func Order(g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// discover marks id seen at depth d and enqueues it.
func (w *walker) discover(id, d int) {
	w.seen[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nb := range w.graph.Neighbors(item.id) { // ascending
			if w.seen[nb] || !w.opts.FilterNeighbor(item.id, nb) {
				continue
			}
			w.res.Parent[nb] = item.id
			w.discover(nb, next)
		}
	}

	return nil
}
