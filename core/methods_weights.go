// File: methods_weights.go
// Role: Component weights and weighted rescoring.

package core

import "fmt"

// SetComponentWeights stores w and rescores every arc whose component vector
// has exactly len(w) entries: score = Σ w[i].Value * comps[i].
// Arcs with no or mismatched components keep their stored score.
// Returns the number of rescored arcs.
//
// Complexity: O(A * len(w)).
func (g *Graph) SetComponentWeights(w Weights) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.weights = append(Weights(nil), w...)
	values := g.weights.Values()
	n := 0
	for i, c := range g.comps {
		if c == nil || len(c) != len(values) {
			continue
		}
		g.arcs[i].Score = Dot(values, c)
		n++
	}

	return n
}

// ComponentWeights returns a copy of the stored weight vector.
func (g *Graph) ComponentWeights() Weights {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append(Weights(nil), g.weights...)
}

// CheckWeightValues reports whether alt can rescore every arc on the fly:
// its length must match the stored weight vector and every arc's component
// vector. The returned error wraps ErrIncompatibleWeights.
func (g *Graph) CheckWeightValues(alt []float64) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(alt) != len(g.weights) {
		return fmt.Errorf("%w: %d values, graph has %d weights",
			ErrIncompatibleWeights, len(alt), len(g.weights))
	}
	for i, c := range g.comps {
		if len(c) != len(alt) {
			return fmt.Errorf("%w: arc %d has %d components, want %d",
				ErrIncompatibleWeights, i, len(c), len(alt))
		}
	}

	return nil
}
