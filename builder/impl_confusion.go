// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// impl_confusion.go - ConfusionNetwork(slots, width) constructor.
//
// Contract:
//   • slots >= 1 and width >= 1 (else ErrTooFewStates).
//   • For each slot i, width parallel arcs s_i -> s_{i+1} emitting
//     cfg.wordFn(i, j); the last state is registered final.
//   • Yields width^slots distinct paths, which makes it the natural fixture
//     for k-best tests.
//
// Complexity: O(slots * width).

package builder

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

const methodConfusion = "ConfusionNetwork"

// ConfusionNetwork returns a Constructor that appends a sausage lattice.
func ConfusionNetwork(slots, width int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if slots < 1 || width < 1 {
			return fmt.Errorf("%s: slots=%d width=%d: %w", methodConfusion, slots, width, ErrTooFewStates)
		}
		cur := lastState(g)
		for i := 0; i < slots; i++ {
			next := nextState(g)
			for j := 0; j < width; j++ {
				if err := addArc(g, cfg, methodConfusion, cur, next, []string{cfg.wordFn(i, j)}); err != nil {
					return err
				}
			}
			cur = next
		}

		return g.AddFinalState(cur)
	}
}
