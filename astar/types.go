// Package astar defines the heuristic contract, options and result of the
// A* search.
package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sociograph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to AStar.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrInvalidNode indicates that the start or target node does not exist.
	ErrInvalidNode = fmt.Errorf("astar: start or target: %w", core.ErrNodeNotFound)

	// ErrNegativeWeight indicates an edge with negative weight; A* requires
	// non-negative costs just as Dijkstra does.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrHeuristicNil indicates WithHeuristic was given a nil function.
	ErrHeuristicNil = errors.New("astar: heuristic is nil")
)

// Heuristic estimates the remaining cost from node u to target.
// It must never overestimate for the returned path to be optimal.
type Heuristic func(u, target int) float64

// Zero is the default heuristic. Nodes carry no spatial coordinates, so
// there is nothing to estimate from; with h ≡ 0 A* reduces to a Dijkstra
// search that stops as soon as the target is settled.
func Zero(int, int) float64 { return 0 }

// Options configures AStar.
type Options struct {
	Heuristic Heuristic

	err error
}

// Option is a functional option for AStar.
type Option func(*Options)

// DefaultOptions returns Options using the Zero heuristic.
func DefaultOptions() Options {
	return Options{Heuristic: Zero}
}

// WithHeuristic replaces the Zero heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = ErrHeuristicNil
			return
		}
		o.Heuristic = h
	}
}

// Result is the outcome of a single A* query.
type Result struct {
	Start, Target int

	// Dist holds the best known cost from start for every node; +Inf for
	// nodes never reached before the search stopped.
	Dist map[int]float64

	// Prev maps a node to its predecessor; start and unreached nodes are absent.
	Prev map[int]int

	// Path is the start→target node sequence, empty when target is unreachable.
	Path []int
}

// Cost returns the total weight of Path, or +Inf when Path is empty.
func (r *Result) Cost() float64 {
	return r.Dist[r.Target]
}
