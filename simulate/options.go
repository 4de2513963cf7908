// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// options.go — functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     operations themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through genConfig.

package simulate

import (
	"golang.org/x/exp/rand" // gonum-compatible RNG source for all sampling
)

// Option customizes a Generate run by mutating a genConfig before any
// sampling begins. Applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// DefaultMaxAttempts is the partitioner's attempt budget when
// WithMaxAttempts is not supplied. At 10000 the budget is effectively
// unreachable for any reasonably wide range while still guaranteeing
// termination with a diagnostic.
const DefaultMaxAttempts = 10000

// defaultSeed is the fixed seed used when callers pass WithSeed(0) or no
// seed at all. The value is arbitrary but stable to keep reproducible
// defaults.
const defaultSeed uint64 = 1

// genConfig aggregates the run-level knobs that are not scenario inputs.
// It is resolved once per Generate call and passed by value.
type genConfig struct {
	// rng is the explicit generator handle threaded through every sampling
	// call, in the documented draw order.
	rng *rand.Rand

	// maxAttempts bounds the partitioner's resampling loop.
	maxAttempts int
}

// newGenConfig builds deterministic defaults and applies options in order
// (last-wins semantics).
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:         rand.New(rand.NewSource(defaultSeed)),
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds a fresh deterministic RNG for the run. Seed 0 maps to the
// documented default seed, mirroring the no-option behavior.
func WithSeed(seed uint64) Option {
	return func(c *genConfig) {
		s := seed
		if s == 0 {
			s = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(s))
	}
}

// WithRand attaches an explicit RNG, e.g. to share one stream across
// several Generate calls. Panics on nil to surface programmer error early;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("simulate: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithMaxAttempts overrides the partitioner's attempt budget.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("simulate: WithMaxAttempts(n<1)")
	}
	return func(c *genConfig) {
		c.maxAttempts = n
	}
}
