package nbest

import (
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/propagate"
)

// Search extracts up to k best complete hypotheses from g in descending
// score order.
//
// Steps:
//  1. h = restScores, the exact best completion score of every state.
//  2. Push the empty hypothesis at the initial state with priority
//     initialScore + h[0].
//  3. While fewer than k hypotheses are complete and the open frontier is
//     not empty: pop the best one; if it has at least one arc and ends in a
//     final state move it to the closed frontier (priority = score);
//     otherwise push every extension over a non-pruned outgoing arc with
//     priority score + arcScore + h[succ].
//  4. Drain the closed frontier.
//
// Both frontiers hold at most StackSize entries. The result is exact unless
// an eviction dropped a hypothesis that would have made the top k.
//
// An empty graph or k == 0 yields an empty list. On context cancellation
// the hypotheses completed so far are returned together with ctx.Err().
//
// Errors: ErrGraphNil, ErrBadLength, context errors.
func Search(g *core.Graph, k int, opts ...Option) ([]Entry, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, k)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if k == 0 || g.Empty() {
		return nil, nil
	}

	start := time.Now()
	ctx, span := startSearchSpan(o.Ctx, k, o.StackSize, g.NumArcs())
	defer span.End()

	// 1. Heuristic
	h, err := propagate.Backward(g)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("nbest: heuristic: %w", err)
	}

	// 2. Frontiers
	open := NewStack[hyp](o.StackSize)
	closed := NewStack[hyp](o.StackSize)
	initScore := g.InitialStateScore()
	open.Push(initScore+h[core.InitialState], hyp{score: initScore, last: core.InitialState})

	// 3. Best-first loop
	var st searchStats
	var loopErr error
	for closed.Len() < k && !open.Empty() {
		select {
		case <-ctx.Done():
			loopErr = ctx.Err()
		default:
		}
		if loopErr != nil {
			break
		}
		if o.MaxIterations > 0 && st.iterations >= o.MaxIterations {
			o.Logger.Warn("k-best search stopped at iteration limit",
				"limit", o.MaxIterations, "complete", closed.Len(), "k", k)
			break
		}
		st.iterations++

		_, cur, _ := open.Pop()
		if len(cur.arcs) > 0 && g.IsFinal(cur.last) {
			closed.Push(cur.score, cur)
			continue
		}
		out, err := g.ArcsToSucc(cur.last)
		if err != nil {
			return nil, fmt.Errorf("nbest: expanding state %d: %w", cur.last, err)
		}
		for _, id := range out {
			a, err := g.Arc(id)
			if err != nil {
				return nil, fmt.Errorf("nbest: %w", err)
			}
			next := hyp{
				score: cur.score + a.Score,
				arcs:  append(append(make([]core.ArcID, 0, len(cur.arcs)+1), cur.arcs...), id),
				last:  a.Succ,
			}
			open.Push(next.score+h[a.Succ], next)
			st.expansions++
		}
	}
	st.evictions = open.Evicted() + closed.Evicted()

	// 4. Drain
	entries := make([]Entry, 0, closed.Len())
	for !closed.Empty() {
		_, done, _ := closed.Pop()
		e, err := toEntry(g, done)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	st.results = len(entries)

	setSearchSpanResult(span, st)
	if loopErr != nil {
		span.SetStatus(codes.Error, loopErr.Error())
	}
	recordSearch(ctx, time.Since(start), st, loopErr != nil)
	o.Logger.Debug("k-best search finished",
		"k", k, "results", st.results, "iterations", st.iterations, "evictions", st.evictions)

	return entries, loopErr
}

// toEntry resolves a complete hypothesis into words and summed components.
func toEntry(g *core.Graph, h hyp) (Entry, error) {
	e := Entry{Score: h.score, Arcs: h.arcs}
	compsOK := true
	for i, id := range h.arcs {
		a, err := g.Arc(id)
		if err != nil {
			return Entry{}, fmt.Errorf("nbest: %w", err)
		}
		e.Words = append(e.Words, a.Words...)

		c, _ := g.Components(id)
		switch {
		case !compsOK:
		case c == nil || (i > 0 && len(c) != len(e.Components)):
			compsOK = false
			e.Components = nil
		case i == 0:
			e.Components = c
		default:
			for j := range c {
				e.Components[j] += c[j]
			}
		}
	}
	e.Sentence = strings.Join(e.Words, " ")

	return e, nil
}
