package prune

import (
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/propagate"
)

// scoreTolerance absorbs summation-order rounding between the forward and
// backward passes, so arcs on a best path compare equal to the best score.
const scoreTolerance = 1e-9

// Prune marks arcs whose best complete path scores below
// bestHyp + ln(threshold) and clears the flag of every other arc.
//
// Steps:
//  1. threshold == core.Unlimited clears all flags and returns 0.
//  2. Forward and backward scores are computed over every arc, pruned
//     or not, so that repeated calls are idempotent.
//  3. bestHyp is the best final-state forward score; logThreshold is
//     core.SmallScore for threshold 0 and ln(threshold) otherwise.
//  4. arc (p, s, score) is pruned iff prev[p] + score + rest[s] < bestHyp + logThreshold.
//
// Returns the number of arcs marked pruned. An empty graph yields (0, nil).
//
// Errors: ErrGraphNil, ErrBadThreshold.
// Complexity: O(S + A).
func Prune(g *core.Graph, threshold float64, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(threshold) || (threshold < 0 && threshold != core.Unlimited) {
		return 0, fmt.Errorf("%w: %v", ErrBadThreshold, threshold)
	}

	start := time.Now()
	ctx, span := startPruneSpan(o.Ctx, threshold, g.NumArcs())
	defer span.End()

	// 1. Unlimited
	if threshold == core.Unlimited {
		g.ResetPruned()
		recordPrune(ctx, time.Since(start), 0, true)
		return 0, nil
	}
	if g.Empty() {
		return 0, nil
	}

	// 2. Both passes over the full arc set
	fwd, err := propagate.Forward(g, propagate.WithPrunedArcs(), propagate.WithLogger(o.Logger))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("prune: forward pass: %w", err)
	}
	rest, err := propagate.Backward(g, propagate.WithPrunedArcs())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("prune: backward pass: %w", err)
	}

	// 3. Cut-off
	_, bestHyp := propagate.BestFinal(g, fwd.Scores)
	logThreshold := core.SmallScore
	if threshold != 0 {
		logThreshold = math.Log(threshold)
	}
	cutoff := bestHyp + logThreshold
	tol := scoreTolerance * math.Max(1, math.Abs(bestHyp))

	// 4. Mark
	n := 0
	for i, a := range g.Arcs() {
		arcBest := fwd.Scores[a.Pred] + a.Score + rest[a.Succ]
		p := arcBest < cutoff-tol
		if p {
			n++
		}
		if err := g.SetPruned(core.ArcID(i), p); err != nil {
			return n, err
		}
	}

	span.SetAttributes(attribute.Int("prune.pruned_arcs", n))
	recordPrune(ctx, time.Since(start), n, false)
	o.Logger.Debug("word graph pruned",
		"threshold", threshold, "arcs", g.NumArcs(), "pruned", n, "best", bestHyp)

	return n, nil
}

// FinalStatePruned reports whether s has at least one incoming arc and all
// of them are pruned. States outside the range have no incoming arcs.
func FinalStatePruned(g *core.Graph, s core.StateID) bool {
	if g == nil {
		return false
	}
	in, err := g.AllArcsToPred(s)
	if err != nil || len(in) == 0 {
		return false
	}
	for _, id := range in {
		if p, _ := g.Pruned(id); !p {
			return false
		}
	}

	return true
}
