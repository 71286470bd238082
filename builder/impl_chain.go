// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// impl_chain.go - Chain(words...) constructor.
//
// Contract:
//   • len(words) >= 1 (else ErrTooFewStates).
//   • One arc per word, each emitting that single word, starting at the
//     current last state; the end state is registered final.
//
// Complexity: O(len(words)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

const methodChain = "Chain"

// Chain returns a Constructor that appends a linear path spelling words.
func Chain(words ...string) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(words) == 0 {
			return fmt.Errorf("%s: no words: %w", methodChain, ErrTooFewStates)
		}
		cur := lastState(g)
		for _, w := range words {
			next := nextState(g)
			if err := addArc(g, cfg, methodChain, cur, next, []string{w}); err != nil {
				return err
			}
			cur = next
		}

		return g.AddFinalState(cur)
	}
}
