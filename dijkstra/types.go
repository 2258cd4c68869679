// Package dijkstra defines sentinel errors and configuration options
// for Dijkstra's shortest-path algorithm on a weighted core.Graph.
//
// Options:
//
//	– WithMaxDistance:      optional cap on distances to explore; nodes beyond it stay at +Inf.
//	– WithInfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrGraphNil         if the provided graph pointer is nil.
//	– ErrStartNotFound    if the start node does not exist (matches core.ErrNodeNotFound).
//	– ErrTargetNotFound   if ShortestPath is asked for a missing target.
//	– ErrNegativeWeight   if any edge weight is negative.
//	– ErrBadMaxDistance   if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 or NaN.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sociograph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist in the graph.
	ErrStartNotFound = fmt.Errorf("dijkstra: start node: %w", core.ErrNodeNotFound)

	// ErrTargetNotFound indicates that the target node does not exist in the graph.
	ErrTargetNotFound = fmt.Errorf("dijkstra: target node: %w", core.ErrNodeNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – nodes whose tentative distance exceeds this are not settled.
// InfEdgeThreshold – edges with weight >= this are skipped.
//
// Both default to +Inf (no cap, no walls).
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Negative or NaN values make Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 || math.IsNaN(limit) {
			if o.err == nil {
				o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, limit)
			}
			return
		}
		o.MaxDistance = limit
	}
}

// WithInfEdgeThreshold defines a weight at or above which edges are
// considered non-traversable. Values <= 0 or NaN make Dijkstra return
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			if o.err == nil {
				o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			}
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
