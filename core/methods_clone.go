// File: methods_clone.go
// Role: Cloning, clearing and reordering graph instances.
// Determinism:
//   - Clone keeps ArcIDs, StateIDs and adjacency order identical to the source.
//   - ReorderArcs renumbers arcs by their position in the order and rebuilds
//     adjacency so lists stay ascending.

package core

import "fmt"

// Clone returns a deep copy of the Graph: configuration, arcs, flags,
// components, adjacency, final states, initial score and weights.
// The clone shares no mutable state with g.
//
// Complexity: O(S + A + total words + total components).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		sparse:       g.sparse,
		arcs:         make([]Arc, len(g.arcs)),
		pruned:       append([]bool(nil), g.pruned...),
		comps:        make([][]float64, len(g.comps)),
		states:       make([]stateAdj, len(g.states)),
		finals:       make(map[StateID]struct{}, len(g.finals)),
		initialScore: g.initialScore,
		weights:      append(Weights(nil), g.weights...),
	}
	for i, a := range g.arcs {
		a.Words = append([]string(nil), a.Words...)
		clone.arcs[i] = a
	}
	for i, c := range g.comps {
		if c != nil {
			clone.comps[i] = append([]float64(nil), c...)
		}
	}
	for i, st := range g.states {
		clone.states[i] = stateAdj{
			in:  append([]ArcID(nil), st.in...),
			out: append([]ArcID(nil), st.out...),
		}
	}
	for s := range g.finals {
		clone.finals[s] = struct{}{}
	}

	return clone
}

// Clear removes all arcs, states and final states, and resets the initial
// score and weights. Configuration flags are kept.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.arcs = nil
	g.pruned = nil
	g.comps = nil
	g.states = nil
	g.finals = make(map[StateID]struct{})
	g.initialScore = 0
	g.weights = nil
}

// Arcs returns a deep copy of the arc list indexed by ArcID.
func (g *Graph) Arcs() []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Arc, len(g.arcs))
	for i, a := range g.arcs {
		a.Words = append([]string(nil), a.Words...)
		out[i] = a
	}

	return out
}

// ReorderArcs rearranges the arc list so that the arc previously at
// order[i] becomes arc i. Pruned flags and component vectors move with
// their arcs. On error the graph is left untouched.
//
// Errors: ErrBadPermutation.
// Complexity: O(S + A).
func (g *Graph) ReorderArcs(order []ArcID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1. Validate the permutation
	if len(order) != len(g.arcs) {
		return fmt.Errorf("%w: %d ids for %d arcs", ErrBadPermutation, len(order), len(g.arcs))
	}
	seen := make([]bool, len(order))
	for _, id := range order {
		if !g.hasArc(id) || seen[id] {
			return fmt.Errorf("%w: id %d", ErrBadPermutation, id)
		}
		seen[id] = true
	}

	// 2. Permute the parallel arrays
	arcs := make([]Arc, len(order))
	pruned := make([]bool, len(order))
	comps := make([][]float64, len(order))
	for i, old := range order {
		arcs[i] = g.arcs[old]
		pruned[i] = g.pruned[old]
		comps[i] = g.comps[old]
	}
	g.arcs, g.pruned, g.comps = arcs, pruned, comps

	// 3. Rebuild adjacency in the new numbering
	for i := range g.states {
		g.states[i] = stateAdj{}
	}
	for i, a := range g.arcs {
		id := ArcID(i)
		g.states[a.Pred].out = append(g.states[a.Pred].out, id)
		g.states[a.Succ].in = append(g.states[a.Succ].in, id)
	}

	return nil
}
