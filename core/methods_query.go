// File: methods_query.go
// Role: Read-only queries over states, arcs and final states.
// Determinism:
//   - Every list is returned in ascending id order.
// Concurrency:
//   - Read locks only; returned slices are copies owned by the caller.

package core

import (
	"fmt"
	"sort"
)

// NumStates returns the size of the state range.
func (g *Graph) NumStates() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.states)
}

// NumArcs returns the total number of arcs, pruned ones included.
func (g *Graph) NumArcs() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.arcs)
}

// NumNonPrunedArcs returns the number of arcs whose pruned flag is false.
func (g *Graph) NumNonPrunedArcs() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, p := range g.pruned {
		if !p {
			n++
		}
	}

	return n
}

// Empty reports whether the graph has no arcs.
func (g *Graph) Empty() bool {
	return g.NumArcs() == 0
}

// StateRange returns the first and last state index.
// Errors: ErrEmptyGraph.
func (g *Graph) StateRange() (StateID, StateID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.arcs) == 0 {
		return InvalidState, InvalidState, ErrEmptyGraph
	}

	return InitialState, StateID(len(g.states) - 1), nil
}

// ArcRange returns the first and last arc index.
// Errors: ErrEmptyGraph.
func (g *Graph) ArcRange() (ArcID, ArcID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.arcs) == 0 {
		return InvalidArc, InvalidArc, ErrEmptyGraph
	}

	return 0, ArcID(len(g.arcs) - 1), nil
}

// Arc returns a copy of the arc with the given id.
// Errors: ErrArcNotFound.
func (g *Graph) Arc(id ArcID) (Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasArc(id) {
		return Arc{}, fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}
	a := g.arcs[id]
	a.Words = append([]string(nil), a.Words...)

	return a, nil
}

// Components returns a copy of the arc's score-component vector,
// or nil if the arc was inserted without one.
// Errors: ErrArcNotFound.
func (g *Graph) Components(id ArcID) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasArc(id) {
		return nil, fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}
	if g.comps[id] == nil {
		return nil, nil
	}

	return append([]float64(nil), g.comps[id]...), nil
}

// ArcsToPred lists the non-pruned incoming arcs of s.
// Errors: ErrStateNotFound.
func (g *Graph) ArcsToPred(s StateID) ([]ArcID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasState(s) {
		return nil, fmt.Errorf("%w: %d", ErrStateNotFound, s)
	}

	return g.filterPruned(g.states[s].in), nil
}

// ArcsToSucc lists the non-pruned outgoing arcs of s.
// Errors: ErrStateNotFound.
func (g *Graph) ArcsToSucc(s StateID) ([]ArcID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasState(s) {
		return nil, fmt.Errorf("%w: %d", ErrStateNotFound, s)
	}

	return g.filterPruned(g.states[s].out), nil
}

// AllArcsToPred lists every incoming arc of s, pruned ones included.
// Errors: ErrStateNotFound.
func (g *Graph) AllArcsToPred(s StateID) ([]ArcID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasState(s) {
		return nil, fmt.Errorf("%w: %d", ErrStateNotFound, s)
	}

	return append([]ArcID(nil), g.states[s].in...), nil
}

// IsFinal reports whether s is registered as a final state.
func (g *Graph) IsFinal(s StateID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.finals[s]

	return ok
}

// FinalStates returns the registered final states in ascending order.
func (g *Graph) FinalStates() []StateID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]StateID, 0, len(g.finals))
	for s := range g.finals {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Density returns NumNonPrunedArcs / refLen, typically with refLen set to
// the source sentence length.
// Errors: ErrBadReferenceLength.
func (g *Graph) Density(refLen int) (float64, error) {
	if refLen <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadReferenceLength, refLen)
	}

	return float64(g.NumNonPrunedArcs()) / float64(refLen), nil
}

// Pruned reports the pruned flag of the arc.
// Errors: ErrArcNotFound.
func (g *Graph) Pruned(id ArcID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasArc(id) {
		return false, fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}

	return g.pruned[id], nil
}

// PrunedFlags returns a copy of the pruned-flag array indexed by ArcID.
func (g *Graph) PrunedFlags() []bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]bool(nil), g.pruned...)
}

// SetPruned sets the pruned flag of the arc.
// Errors: ErrArcNotFound.
func (g *Graph) SetPruned(id ArcID, pruned bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasArc(id) {
		return fmt.Errorf("%w: %d", ErrArcNotFound, id)
	}
	g.pruned[id] = pruned

	return nil
}

// ResetPruned clears every pruned flag.
func (g *Graph) ResetPruned() {
	g.mu.Lock()
	for i := range g.pruned {
		g.pruned[i] = false
	}
	g.mu.Unlock()
}

func (g *Graph) hasArc(id ArcID) bool {
	return id >= 0 && int(id) < len(g.arcs)
}

func (g *Graph) hasState(s StateID) bool {
	return s >= 0 && int(s) < len(g.states)
}

// filterPruned copies ids, dropping pruned arcs. Caller holds mu.
func (g *Graph) filterPruned(ids []ArcID) []ArcID {
	out := make([]ArcID, 0, len(ids))
	for _, id := range ids {
		if !g.pruned[id] {
			out = append(out, id)
		}
	}

	return out
}
