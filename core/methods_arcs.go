// File: methods_arcs.go
// Role: Arc insertion, final-state registration and the initial-state score.
// Determinism:
//   - ArcIDs are assigned densely in insertion order.
//   - Adjacency lists stay sorted by ArcID because arcs are only appended.

package core

import "fmt"

// AddArc appends the arc pred -> succ with the given words and score.
// No component vector is attached, so SetComponentWeights leaves it alone.
//
// Complexity: amortized O(1) plus O(len(words)).
func (g *Graph) AddArc(pred, succ StateID, words []string, score float64) (ArcID, error) {
	return g.AddArcWithComponents(pred, succ, words, score, nil)
}

// AddArcWithComponents appends the arc pred -> succ carrying the unweighted
// score-component vector comps. Both words and comps are copied.
//
// Steps:
//  1. ensureState validates the endpoints and grows the state arena.
//  2. Append the arc, its pruned flag (false) and its components.
//  3. Register the arc in pred's outgoing and succ's incoming lists.
//
// Errors: ErrInvalidState, ErrStateOrder.
func (g *Graph) AddArcWithComponents(pred, succ StateID, words []string, score float64, comps []float64) (ArcID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1. Validate endpoints
	if err := g.ensureState(pred, succ); err != nil {
		return InvalidArc, err
	}

	// 2. Store the arc
	id := ArcID(len(g.arcs))
	g.arcs = append(g.arcs, Arc{
		Pred:  pred,
		Succ:  succ,
		Words: append([]string(nil), words...),
		Score: score,
	})
	g.pruned = append(g.pruned, false)
	if comps != nil {
		comps = append([]float64(nil), comps...)
	}
	g.comps = append(g.comps, comps)

	// 3. Adjacency
	g.states[pred].out = append(g.states[pred].out, id)
	g.states[succ].in = append(g.states[succ].in, id)

	return id, nil
}

// ensureState grows the state arena so that pred and succ exist.
// The initial state exists implicitly once the first arc is inserted.
// Without WithSparseStates, pred must already exist and succ may be at most
// one past the last known state.
func (g *Graph) ensureState(pred, succ StateID) error {
	if pred < 0 || succ < 0 {
		return fmt.Errorf("%w: arc %d -> %d", ErrInvalidState, pred, succ)
	}
	n := StateID(len(g.states))
	if n == 0 {
		n = 1 // the initial state
	}
	if !g.sparse {
		if pred >= n {
			return fmt.Errorf("%w: predecessor %d unknown (states: %d)", ErrStateOrder, pred, n)
		}
		if succ > n {
			return fmt.Errorf("%w: successor %d skips ahead (states: %d)", ErrStateOrder, succ, n)
		}
	}
	top := pred
	if succ > top {
		top = succ
	}
	for StateID(len(g.states)) <= top {
		g.states = append(g.states, stateAdj{})
	}

	return nil
}

// AddFinalState registers s as a final state. Registering twice is a no-op.
// s may lie beyond the current state range; algorithms ignore such states
// until an arc introduces them.
func (g *Graph) AddFinalState(s StateID) error {
	if s < 0 {
		return fmt.Errorf("%w: final state %d", ErrInvalidState, s)
	}
	g.mu.Lock()
	g.finals[s] = struct{}{}
	g.mu.Unlock()

	return nil
}

// SetInitialStateScore sets the score carried by the initial state.
func (g *Graph) SetInitialStateScore(score float64) {
	g.mu.Lock()
	g.initialScore = score
	g.mu.Unlock()
}

// InitialStateScore returns the score carried by the initial state.
func (g *Graph) InitialStateScore() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.initialScore
}
