// SPDX-License-Identifier: MIT
// Package: lvalign/simulate
//
// options.go: functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order.
//   • Option constructors validate and PANIC on meaningless inputs
//     (nil RNG). Generators themselves never panic.
//   • Determinism is explicit: every call without WithSeed/WithRand starts
//     from defaultSeed, so unseeded output is reproducible too.

package simulate

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
)

// defaultSeed seeds the generator when no RNG option is given.
const defaultSeed uint64 = 0

// Option customizes a single generator call.
type Option func(*config)

// config is the resolved option set of one call.
type config struct {
	rng    *rand.Rand  // source for every random draw
	logger logr.Logger // V(1) per-call summaries
}

// newConfig builds a config with deterministic defaults and applies opts.
func newConfig(opts ...Option) config {
	cfg := config{logger: logr.Discard()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.rng == nil {
		cfg.rng = newRand(defaultSeed)
	}

	return cfg
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// WithSeed draws from a fresh PCG generator seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = newRand(seed) }
}

// WithRand draws from r. The generator advances r, so successive calls
// sharing r produce different output. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulate: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithLogger routes diagnostic output to l.
func WithLogger(l logr.Logger) Option {
	return func(c *config) { c.logger = l }
}
