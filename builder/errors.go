// SPDX-License-Identifier: MIT
// Package: sociograph/builder
//
// errors.go - sentinel errors for synthetic network construction.
//
// Error policy:
//   - Constructors never panic; they return these sentinels wrapped with
//     context via %w. Callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the topology's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step without an RNG (use WithSeed).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an invalid option.
var ErrConstructFailed = errors.New("builder: construction failed")
