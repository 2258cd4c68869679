// SPDX-License-Identifier: MIT
// Package: sociograph/builder
//
// options.go - functional options resolved into builderConfig.

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/sociograph/core"
	"github.com/katalvlaran/sociograph/weight"
)

// Attribute ranges drawn by WithRandomAttributes.
const (
	maxInteraction     = 50
	maxConnectionCount = 20
)

// Option configures a BuildGraph call.
type Option func(*builderConfig)

// builderConfig is resolved once per BuildGraph call and threaded through
// every constructor. nextID advances as constructors add nodes, so composed
// topologies never share IDs.
type builderConfig struct {
	nextID     int
	rng        *rand.Rand
	randAttrs  bool
	weightFn   weight.Func
	namePrefix string
	err        error
}

func newBuilderConfig(opts ...Option) *builderConfig {
	c := &builderConfig{weightFn: weight.Euclidean}
	for _, fn := range opts {
		fn(c)
	}

	return c
}

// WithSeed installs a seeded RNG, making stochastic constructors reproducible.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithFirstID sets the ID of the first node created (default 0). Negative
// values fail with ErrConstructFailed.
func WithFirstID(id int) Option {
	return func(c *builderConfig) {
		if id < 0 {
			c.err = ErrConstructFailed
			return
		}
		c.nextID = id
	}
}

// WithRandomAttributes draws activity in [0,1), interaction in [0,50) and
// connection count in [0,20) for every node. Requires WithSeed.
func WithRandomAttributes() Option {
	return func(c *builderConfig) { c.randAttrs = true }
}

// WithWeightFunc sets the edge weight strategy (default weight.Euclidean).
// A nil fn keeps the default.
func WithWeightFunc(fn weight.Func) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithNamePrefix names nodes "<prefix><id>" instead of core's default.
func WithNamePrefix(prefix string) Option {
	return func(c *builderConfig) { c.namePrefix = prefix }
}

// addNodes inserts n fresh nodes and returns their IDs in creation order.
func (c *builderConfig) addNodes(g *core.Graph, n int) ([]int, error) {
	if c.randAttrs && c.rng == nil {
		return nil, ErrNeedRandSource
	}
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		id := c.nextID
		c.nextID++

		var opts []core.NodeOption
		if c.namePrefix != "" {
			opts = append(opts, core.WithName(c.namePrefix+strconv.Itoa(id)))
		}
		if c.randAttrs {
			opts = append(opts,
				core.WithActivity(c.rng.Float64()),
				core.WithInteraction(float64(c.rng.Intn(maxInteraction))),
				core.WithConnectionCount(float64(c.rng.Intn(maxConnectionCount))),
			)
		}
		if _, err := g.AddNode(id, opts...); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// connect adds u--v weighted by the configured strategy.
func (c *builderConfig) connect(g *core.Graph, u, v int) error {
	nu, err := g.Node(u)
	if err != nil {
		return err
	}
	nv, err := g.Node(v)
	if err != nil {
		return err
	}
	_, err = g.AddEdge(u, v, c.weightFn(nu, nv))

	return err
}
