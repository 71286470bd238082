// Package reach computes state reachability over non-pruned arcs and the
// "useful" states of a word graph: reachable from the initial state and
// able to reach a final state.
//
// Walks are breadth-first and independent of the stored arc order.
package reach

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// direction selects which arc lists a walker follows.
type direction int

const (
	forward  direction = iota // follow ArcsToSucc
	backward                  // follow ArcsToPred
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	ctx     context.Context
	dir     direction
	allowed []bool // nil: every state may be entered
	queue   []core.StateID
	visited []bool
}

func newWalker(g *core.Graph, o Options, dir direction) *walker {
	n := g.NumStates()
	return &walker{
		graph:   g,
		ctx:     o.Ctx,
		dir:     dir,
		queue:   make([]core.StateID, 0, n),
		visited: make([]bool, n),
	}
}

// enqueue marks s visited and adds it to the queue.
func (w *walker) enqueue(s core.StateID) {
	if w.visited[s] || (w.allowed != nil && !w.allowed[s]) {
		return
	}
	w.visited[s] = true
	w.queue = append(w.queue, s)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		s := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.enqueueNeighbors(s); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues the far endpoint of each non-pruned arc of s.
func (w *walker) enqueueNeighbors(s core.StateID) error {
	var (
		ids []core.ArcID
		err error
	)
	if w.dir == forward {
		ids, err = w.graph.ArcsToSucc(s)
	} else {
		ids, err = w.graph.ArcsToPred(s)
	}
	if err != nil {
		return fmt.Errorf("reach: arcs of state %d: %w", s, err)
	}
	for _, id := range ids {
		a, err := w.graph.Arc(id)
		if err != nil {
			return fmt.Errorf("reach: %w", err)
		}
		if w.dir == forward {
			w.enqueue(a.Succ)
		} else {
			w.enqueue(a.Pred)
		}
	}

	return nil
}

// Reachable returns, for each state, whether it can be reached from `from`
// over non-pruned arcs. `from` itself is reachable.
//
// Errors: ErrGraphNil, core.ErrStateNotFound, or the context error.
// Complexity: O(S + A).
func Reachable(g *core.Graph, from core.StateID, opts ...Option) ([]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if from < 0 || int(from) >= g.NumStates() {
		return nil, fmt.Errorf("%w: %d", core.ErrStateNotFound, from)
	}

	w := newWalker(g, o, forward)
	w.enqueue(from)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.visited, nil
}

// UsefulStates computes the useful states of g.
//
// Steps:
//  1. Forward reachability from the initial state.
//  2. Seed final states that are reachable and have a non-pruned incoming arc.
//  3. Walk backwards from the seeds through reachable states only.
//  4. Number useful states densely in ascending original order.
//
// An empty graph has no useful states.
//
// Errors: ErrGraphNil, or the context error.
// Complexity: O(S + A).
func UsefulStates(g *core.Graph, opts ...Option) (*Useful, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NumStates()
	u := &Useful{Mask: make([]bool, n), Remap: make([]core.StateID, n)}
	for i := range u.Remap {
		u.Remap[i] = core.InvalidState
	}
	if g.Empty() {
		return u, nil
	}

	// 1. Forward reachability
	fwd, err := Reachable(g, core.InitialState, opts...)
	if err != nil {
		return nil, err
	}

	// 2. Seeds
	w := newWalker(g, o, backward)
	w.allowed = fwd
	for _, f := range g.FinalStates() {
		if int(f) >= n {
			continue
		}
		if in, _ := g.ArcsToPred(f); len(in) > 0 {
			w.enqueue(f)
		}
	}

	// 3. Backward walk
	if err = w.loop(); err != nil {
		return nil, err
	}

	// 4. Remap
	for s, ok := range w.visited {
		if ok {
			u.Mask[s] = true
			u.Remap[s] = core.StateID(u.Count)
			u.Count++
		}
	}

	return u, nil
}

// UsefulSubgraph builds a new graph holding only the non-pruned arcs whose
// endpoints are both useful, renumbered by Useful.Remap, with their score
// components, the remapped useful final states, and g's initial score and
// component weights. The result shares no mutable state with g.
//
// Errors: ErrGraphNil, or the context error.
func UsefulSubgraph(g *core.Graph, opts ...Option) (*core.Graph, *Useful, error) {
	u, err := UsefulStates(g, opts...)
	if err != nil {
		return nil, nil, err
	}

	sub := core.NewGraph(
		core.WithSparseStates(),
		core.WithInitialScore(g.InitialStateScore()),
		core.WithComponentWeights(g.ComponentWeights()),
	)
	pruned := g.PrunedFlags()
	for i, a := range g.Arcs() {
		if pruned[i] || !u.IsUseful(a.Pred) || !u.IsUseful(a.Succ) {
			continue
		}
		comps, _ := g.Components(core.ArcID(i))
		if _, err = sub.AddArcWithComponents(u.Remap[a.Pred], u.Remap[a.Succ], a.Words, a.Score, comps); err != nil {
			return nil, nil, fmt.Errorf("reach: rebuilding arc %d: %w", i, err)
		}
	}
	for _, f := range g.FinalStates() {
		if u.IsUseful(f) {
			if err = sub.AddFinalState(u.Remap[f]); err != nil {
				return nil, nil, err
			}
		}
	}

	return sub, u, nil
}
