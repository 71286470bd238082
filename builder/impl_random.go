// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// impl_random.go - RandomLattice(states, extraArcs) constructor.
//
// Contract:
//   • states >= 2 (else ErrTooFewStates); extraArcs >= 0.
//   • Requires cfg.rng (else ErrNeedRandSource).
//   • Every new state s gets one arc from a uniformly drawn earlier state,
//     so all states are reachable; extraArcs further arcs join random pairs
//     p < s. Arcs are emitted sorted by successor, which is topological and
//     introduces states in order. The last state is registered final.
//
// Determinism: same seed and parameters ⇒ identical graph.
// Complexity: O((states + extraArcs) log(states + extraArcs)).

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wordgraph/core"
)

const methodRandom = "RandomLattice"

// RandomLattice returns a Constructor that appends a random acyclic lattice.
func RandomLattice(states, extraArcs int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if states < 2 || extraArcs < 0 {
			return fmt.Errorf("%s: states=%d extra=%d: %w", methodRandom, states, extraArcs, ErrTooFewStates)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		// 1. Draw arcs over local indices 0..states-1
		type pair struct{ p, s int }
		pairs := make([]pair, 0, states-1+extraArcs)
		for s := 1; s < states; s++ {
			pairs = append(pairs, pair{cfg.rng.Intn(s), s})
		}
		for i := 0; i < extraArcs; i++ {
			p := cfg.rng.Intn(states - 1)
			pairs = append(pairs, pair{p, p + 1 + cfg.rng.Intn(states-p-1)})
		}
		sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].s < pairs[j].s })

		// 2. Emit, offset so local state 0 is the current last state
		base := int(lastState(g))
		for i, pr := range pairs {
			p, s := core.StateID(base+pr.p), core.StateID(base+pr.s)
			if err := addArc(g, cfg, methodRandom, p, s, []string{cfg.wordFn(pr.s, i)}); err != nil {
				return err
			}
		}

		return g.AddFinalState(core.StateID(base + states - 1))
	}
}
