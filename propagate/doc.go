// Package propagate implements the two dual linear passes every word graph
// algorithm relies on.
//
// What:
//
//   - Forward (prevScores): best score of any path from a start state to
//     each state, plus the best predecessor arc per state.
//   - Backward (restScores): best score from each state to any final state.
//
// Why:
//
//   - Pruning combines both passes into a per-arc best-path score.
//   - Best-path backtrace follows the forward predecessor links.
//   - k-best search uses restScores as an exact, admissible heuristic.
//
// Preconditions:
//
//	Both passes trust the stored arc order to be topological (see package
//	topo). On an unordered graph they return wrong scores, not an error.
//	Pruned arcs are treated as absent unless WithPrunedArcs is given.
//
// Scores are log scores clamped below at core.SmallScore.
//
// Options (Forward):
//
//	WithStart(s)             start state; scores 0 unless s is the initial state
//	WithExcludedArcs(ids...) forced to core.SmallScore
//	WithAltWeights(w)        on-the-fly rescoring; falls back with a warning
//	WithPrunedArcs()         ignore pruned flags
//	WithLogger(l)            *slog.Logger for diagnostics
//
// Complexity:
//
//   - Time:   O(S + A) per pass (O(S + A·C) with C alternative weights)
//   - Memory: O(S + A)
//
// Errors:
//
//	ErrGraphNil, core.ErrEmptyGraph, core.ErrStateNotFound (start out of range).
//	Incompatible alternative weights are not an error; see CheckAltWeights.
package propagate
