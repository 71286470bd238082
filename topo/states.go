// StateOrder computes a topological ordering of the states of a word graph
// by depth-first search over non-pruned arcs.
//
// For every non-pruned arc p -> s, p appears before s. States that no arc
// touches are included in index order of their DFS roots.
//
// Complexity:
//
//   - Time:   O(S + A)
//   - Memory: O(S) (recursion stack and state slice)
package topo

import "github.com/katalvlaran/wordgraph/core"

// stateSorter encapsulates state for a DFS over word graph states.
type stateSorter struct {
	graph *core.Graph
	opts  options
	state []int          // White, Gray or Black per StateID
	stack []core.StateID // current DFS path, for cycle reporting
	order []core.StateID // post-order
}

// StateOrder returns the states of g in topological order.
// A cycle yields a *CycleError, which matches ErrCycleDetected.
func StateOrder(g *core.Graph, opts ...Option) ([]core.StateID, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state
	n := g.NumStates()
	sorter := &stateSorter{
		graph: g,
		opts:  buildOptions(opts),
		state: make([]int, n),
		order: make([]core.StateID, 0, n),
	}
	// 3. Drive DFS from every unvisited state, initial state first
	for s := 0; s < n; s++ {
		if sorter.state[s] == White {
			if err := sorter.visit(core.StateID(s)); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from s, marking states and detecting cycles.
func (t *stateSorter) visit(s core.StateID) error {
	// 1. Cancellation check at entry
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}
	// 2. Gray means a back edge: report the cycle from s's first occurrence
	if t.state[s] == Gray {
		return t.cycleFrom(s)
	}
	if t.state[s] == Black {
		return nil
	}
	t.state[s] = Gray
	t.stack = append(t.stack, s)

	// 3. Explore outgoing non-pruned arcs
	out, _ := t.graph.ArcsToSucc(s)
	for _, id := range out {
		a, err := t.graph.Arc(id)
		if err != nil {
			return err
		}
		if err = t.visit(a.Succ); err != nil {
			return err
		}
	}

	// 4. Done
	t.stack = t.stack[:len(t.stack)-1]
	t.state[s] = Black
	t.order = append(t.order, s)

	return nil
}

func (t *stateSorter) cycleFrom(s core.StateID) error {
	for i, x := range t.stack {
		if x == s {
			cycle := append([]core.StateID(nil), t.stack[i:]...)
			return &CycleError{Cycle: append(cycle, s)}
		}
	}

	return &CycleError{Cycle: []core.StateID{s}}
}
