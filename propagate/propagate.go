package propagate

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// Forward computes the best score from the start state to every state
// (prevScores) together with each state's best predecessor arc.
//
// Arcs are walked in stored order, which must be topological. An arc is
// applied only when its predecessor has been reached; its candidate
// pred score + arc score is clamped at core.SmallScore and replaces the
// successor's score when strictly greater.
//
// Errors: ErrGraphNil, core.ErrEmptyGraph, core.ErrStateNotFound.
// Complexity: O(S + A).
func Forward(g *core.Graph, opts ...Option) (*ForwardResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	if g.Empty() {
		return nil, core.ErrEmptyGraph
	}
	n := g.NumStates()
	if o.Start < 0 || int(o.Start) >= n {
		return nil, fmt.Errorf("%w: start %d", core.ErrStateNotFound, o.Start)
	}

	// 1. Decide whether alternative weights apply
	alt := len(o.AltWeights) > 0
	if alt {
		if err := CheckAltWeights(g, o.AltWeights); err != nil {
			o.Logger.Warn("alternative weights cannot be applied, using stored scores",
				"error", err)
			alt = false
		}
	}

	// 2. Seed scores
	res := &ForwardResult{
		Start:             o.Start,
		Scores:            make([]float64, n),
		BestPred:          make([]core.ArcID, n),
		AltWeightsApplied: alt,
	}
	for i := range res.Scores {
		res.Scores[i] = core.SmallScore
		res.BestPred[i] = core.InvalidArc
	}
	if o.Start == core.InitialState {
		res.Scores[o.Start] = g.InitialStateScore()
	} else {
		res.Scores[o.Start] = 0
	}
	reached := make([]bool, n)
	reached[o.Start] = true

	// 3. Relax arcs in stored order
	arcs := g.Arcs()
	pruned := g.PrunedFlags()
	for i, a := range arcs {
		id := core.ArcID(i)
		if pruned[i] && !o.IncludePruned {
			continue
		}
		if !reached[a.Pred] {
			continue
		}
		score := a.Score
		if alt {
			comps, _ := g.Components(id)
			score = core.Dot(o.AltWeights, comps)
		}
		cand := score + res.Scores[a.Pred]
		if _, excluded := o.Excluded[id]; excluded {
			cand = core.SmallScore
		}
		cand = core.ClampScore(cand)
		if cand > res.Scores[a.Succ] {
			res.Scores[a.Succ] = cand
			res.BestPred[a.Succ] = id
		}
		reached[a.Succ] = true
	}

	return res, nil
}

// Backward computes restScores: the best score from every state to any
// final state. Final states are seeded with 0, all others with
// core.SmallScore, and arcs are walked in reverse stored order.
// Only WithPrunedArcs affects the pass.
//
// Errors: ErrGraphNil, core.ErrEmptyGraph.
// Complexity: O(S + A).
func Backward(g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := buildOptions(opts)
	if g.Empty() {
		return nil, core.ErrEmptyGraph
	}
	n := g.NumStates()

	rest := make([]float64, n)
	for i := range rest {
		rest[i] = core.SmallScore
	}
	for _, f := range g.FinalStates() {
		if int(f) < n {
			rest[f] = 0
		}
	}

	arcs := g.Arcs()
	pruned := g.PrunedFlags()
	for i := len(arcs) - 1; i >= 0; i-- {
		if pruned[i] && !o.IncludePruned {
			continue
		}
		a := arcs[i]
		cand := core.ClampScore(a.Score + rest[a.Succ])
		if cand > rest[a.Pred] {
			rest[a.Pred] = cand
		}
	}

	return rest, nil
}

// CheckAltWeights reports whether alt can replace the stored arc scores.
// The returned error wraps core.ErrIncompatibleWeights.
func CheckAltWeights(g *core.Graph, alt []float64) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(alt) == 0 {
		return fmt.Errorf("%w: no alternative weights given", core.ErrIncompatibleWeights)
	}

	return g.CheckWeightValues(alt)
}

// BestFinal returns the final state with the highest score in scores,
// ties going to the lowest state id. Scores must exceed core.SmallScore;
// otherwise (core.InvalidState, core.SmallScore) is returned.
func BestFinal(g *core.Graph, scores []float64) (core.StateID, float64) {
	best, bestScore := core.InvalidState, core.SmallScore
	if g == nil {
		return best, bestScore
	}
	for _, f := range g.FinalStates() {
		if int(f) >= len(scores) {
			continue
		}
		if scores[f] > bestScore {
			best, bestScore = f, scores[f]
		}
	}

	return best, bestScore
}
