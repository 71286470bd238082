// SPDX-License-Identifier: MIT

// Package builder generates deterministic word graph fixtures for tests,
// benchmarks and the wgproc gen command.
//
// Constructors:
//
//	Chain(words...)                  single path spelling words
//	ConfusionNetwork(slots, width)   width parallel arcs per slot
//	RandomLattice(states, extraArcs) random acyclic lattice (needs WithSeed)
//
// Constructors compose: each continues from the graph's current last state
// and marks the state it ends in as final.
//
// Options:
//
//	WithSeed / WithRand     RNG for stochastic constructors and score draws
//	WithScoreFn / WithUniformScore
//	WithWordFn              word naming for generated arcs
//	WithComponents(n)       n score components per arc with unit weights
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformScore(-3, 0)},
//	    builder.ConfusionNetwork(4, 3))
package builder
