// SPDX-License-Identifier: MIT
// Package: sociograph/builder
//
// api.go - BuildGraph orchestrator and topology constructors.
//
// Design contract:
//   - One orchestrator: BuildGraph(opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Each constructor adds its own fresh block of node IDs, so composing
//     constructors yields one component per constructor (unless RandomSparse
//     leaves its block disconnected).
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sociograph/core"
)

// Constructor applies one deterministic topology to g.
type Constructor func(g *core.Graph, cfg *builderConfig) error

// BuildGraph creates an empty core.Graph, resolves opts and applies every
// constructor in order. Any constructor error is wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor.
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: invalid option: %w", cfg.err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Path links n nodes in a chain: 0-1-...-(n-1). Requires n >= 1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Path: n=%d < 1: %w", n, ErrTooFewNodes)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("Path: %w", err)
		}
		for i := 1; i < n; i++ {
			if err = cfg.connect(g, ids[i-1], ids[i]); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Cycle is Path(n) closed back on its first node. Requires n >= 3.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 3 {
			return fmt.Errorf("Cycle: n=%d < 3: %w", n, ErrTooFewNodes)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("Cycle: %w", err)
		}
		for i := 0; i < n; i++ {
			if err = cfg.connect(g, ids[i], ids[(i+1)%n]); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Star joins one hub (the first node) to n-1 leaves. Requires n >= 2.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 2 {
			return fmt.Errorf("Star: n=%d < 2: %w", n, ErrTooFewNodes)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("Star: %w", err)
		}
		for _, leaf := range ids[1:] {
			if err = cfg.connect(g, ids[0], leaf); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// Complete joins every pair of n nodes. Requires n >= 1.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < 1: %w", n, ErrTooFewNodes)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("Complete: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = cfg.connect(g, ids[i], ids[j]); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}

// RandomSparse is an Erdős–Rényi G(n, p) block: each of the n(n-1)/2 pairs
// is joined with probability p, visited in ascending (i, j) order. p strictly
// between 0 and 1 requires WithSeed.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg *builderConfig) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 || math.IsNaN(p) {
			return fmt.Errorf("RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		ids, err := cfg.addNodes(g, n)
		if err != nil {
			return fmt.Errorf("RandomSparse: %w", err)
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				if err = cfg.connect(g, ids[i], ids[j]); err != nil {
					return fmt.Errorf("RandomSparse: %w", err)
				}
			}
		}

		return nil
	}
}
