// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • A nil function or RNG is ignored, keeping the previous setting.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig
// before any constructor runs.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex label generator: global index -> label.
// A nil fn keeps the current scheme.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// A nil r keeps the current RNG; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets bipartite side labels (left/right).
// Empty values mean “use defaults”.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
