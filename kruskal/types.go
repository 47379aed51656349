// Package kruskal defines configuration options and sentinel errors for maze generation.
package kruskal

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrNilGrid indicates Generate or Components received a nil grid.
var ErrNilGrid = errors.New("kruskal: grid is nil")

// config aggregates all knobs used by Generate.
type config struct {
	// rng drives candidate sampling; never nil after newConfig.
	rng *rand.Rand
	// onAccept, if set, observes every connection kept in the tree, in order.
	onAccept func(grid.Connection)
}

// Option configures a Generate call.
type Option func(*config)

// WithSeed samples candidates from a fresh source seeded with seed.
// Seed 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand samples candidates from r. Panics on nil.
// r is advanced by Generate and must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("kruskal: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithOnAccept registers fn to be called for each connection added to the
// tree, in acceptance order. Panics on nil.
func WithOnAccept(fn func(grid.Connection)) Option {
	if fn == nil {
		panic("kruskal: WithOnAccept(nil)")
	}
	return func(c *config) {
		c.onAccept = fn
	}
}

// newConfig applies opts in order (last wins) over deterministic defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}
