// Package bestpath reconstructs the best path from a state to the best
// final state by following forward best-predecessor links.
//
// Complexity:
//
//   - Time:   O(S + A) for the forward pass, O(path length) for the backtrace
//   - Memory: O(S)
package bestpath

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/propagate"
)

// BestPathToFinal runs a forward pass from start (honoring excluded arcs and
// alternative weights) and backtraces from the winning final state.
// When no final state is reachable the returned Path has Score
// core.SmallScore, no arcs and Final core.InvalidState; this is not an error.
//
// Errors: ErrGraphNil, core.ErrEmptyGraph, core.ErrStateNotFound, ErrBrokenChain.
func BestPathToFinal(g *core.Graph, start core.StateID, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts = append(append([]Option(nil), opts...), propagate.WithStart(start))
	fwd, err := propagate.Forward(g, opts...)
	if err != nil {
		return nil, err
	}

	return FromForward(g, fwd)
}

// FromForward backtraces from precomputed forward scores.
//
// Steps:
//  1. Pick the final state with the highest score (ties: lowest id).
//  2. Follow BestPred links until fwd.Start, collecting arcs end to start.
//  3. Fail with ErrBrokenChain on a missing link or a chain longer than the
//     number of states.
func FromForward(g *core.Graph, fwd *propagate.ForwardResult) (*Path, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1. Best final state
	final, score := propagate.BestFinal(g, fwd.Scores)
	p := &Path{Start: fwd.Start, Final: final, Score: score}
	if final == core.InvalidState {
		return p, nil
	}

	// 2. Walk back
	for s := final; s != fwd.Start; {
		if len(p.Arcs) > len(fwd.Scores) {
			return nil, fmt.Errorf("%w: loop at state %d", ErrBrokenChain, s)
		}
		id := fwd.BestPred[s]
		if id == core.InvalidArc {
			return nil, fmt.Errorf("%w: no predecessor for state %d", ErrBrokenChain, s)
		}
		a, err := g.Arc(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBrokenChain, err)
		}
		p.Arcs = append(p.Arcs, id)
		s = a.Pred
	}

	return p, nil
}
