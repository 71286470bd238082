// Sort orders the arc list so that every arc comes after all non-pruned
// arcs into its predecessor state. This is the order score propagation
// relies on.
//
// Complexity:
//
//   - Time:   O(P · (A + Σ indeg)) where P is the number of scans, at most A
//   - Memory: O(S + A)
package topo

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Sort computes a topological arc order without modifying g.
//
// Steps:
//  1. Scan the unplaced arcs in id order.
//  2. Place an arc when every non-pruned arc into its predecessor is
//     already placed and their predecessors are closed; close its
//     predecessor.
//  3. Repeat until all arcs are placed, or fail when a scan places none.
//
// Pruned arcs are placed too, but never act as dependencies.
//
// Errors: ErrGraphNil, ErrAnomalousGraph (also matching ErrCycleDetected when
// a state cycle exists), or the context error.
func Sort(g *core.Graph, opts ...Option) ([]core.ArcID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)

	arcs := g.Arcs()
	placed := make([]bool, len(arcs))
	closed := make([]bool, g.NumStates())
	order := make([]core.ArcID, 0, len(arcs))

	// dependencies of each state: its non-pruned incoming arcs
	deps := make([][]core.ArcID, g.NumStates())
	for s := range deps {
		deps[s], _ = g.ArcsToPred(core.StateID(s))
	}

	for len(order) < len(arcs) {
		// 1. Cancellation once per scan
		select {
		case <-o.ctx.Done():
			return nil, o.ctx.Err()
		default:
		}

		progress := false
		for i, a := range arcs {
			if placed[i] || !ready(deps[a.Pred], arcs, placed, closed) {
				continue
			}
			// 2. Place and close
			placed[i] = true
			closed[a.Pred] = true
			order = append(order, core.ArcID(i))
			progress = true
		}

		// 3. No progress: anomalous
		if !progress {
			err := fmt.Errorf("%w: placed %d of %d arcs", ErrAnomalousGraph, len(order), len(arcs))
			if _, cerr := StateOrder(g); cerr != nil {
				err = fmt.Errorf("%w: %w", err, cerr)
			}
			return nil, err
		}
	}

	return order, nil
}

func ready(deps []core.ArcID, arcs []core.Arc, placed, closed []bool) bool {
	for _, d := range deps {
		if !placed[d] || !closed[arcs[d].Pred] {
			return false
		}
	}

	return true
}

// OrderArcs reorders g's arcs into the order computed by Sort. Pruned flags
// and score components move with their arcs. On error g is left untouched.
// An empty graph is already ordered.
func OrderArcs(g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	if g.Empty() {
		return nil
	}
	o := buildOptions(opts)
	order, err := Sort(g, opts...)
	if err != nil {
		o.logger.Error("cannot order word graph arcs", "error", err)
		return err
	}

	return g.ReorderArcs(order)
}

// IsOrdered reports whether every non-pruned arc into a state precedes
// every arc leaving it.
func IsOrdered(g *core.Graph) bool {
	if g == nil {
		return false
	}
	for i, a := range g.Arcs() {
		if p, _ := g.Pruned(core.ArcID(i)); p {
			continue
		}
		in, _ := g.ArcsToPred(a.Pred)
		for _, d := range in {
			if int(d) >= i {
				return false
			}
		}
	}

	return true
}
