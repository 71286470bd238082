// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil funcs, negative
//     counts); constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithScoreFn overrides the per-arc (or per-component) score generator.
func WithScoreFn(fn ScoreFn) BuilderOption {
	if fn == nil {
		panic("builder: WithScoreFn(nil)")
	}
	return func(c *builderConfig) { c.scoreFn = fn }
}

// WithWordFn overrides the word generator used by ConfusionNetwork and
// RandomLattice.
func WithWordFn(fn func(slot, alt int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithWordFn(nil)")
	}
	return func(c *builderConfig) { c.wordFn = fn }
}

// WithComponents attaches n score components to every arc. The graph gets
// unit weights named c0..c(n-1), so each arc scores the sum of its components.
func WithComponents(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithComponents(n<0)")
	}
	return func(c *builderConfig) { c.components = n }
}
