// Package prune implements threshold pruning of word graph arcs.
//
// What:
//
//	Prune(g, t) scores every arc by the best complete path through it,
//	prev[pred] + score + rest[succ], and marks the arc pruned iff that score
//	lies below bestHyp + ln(t). Arcs are flagged, never deleted; every other
//	package treats flagged arcs as absent.
//
// Thresholds:
//
//	t == core.Unlimited (-1)  clear every flag, return 0
//	t == 0                    logThreshold = core.SmallScore, nothing reachable is pruned
//	0 < t < 1                 keep paths within a factor t of the best path
//	t == 1                    keep only arcs lying on some best path
//	t < 0 (other)             ErrBadThreshold
//
// Determinism:
//
//	Both propagation passes run over the full arc set, ignoring existing
//	flags, so Prune(g, t) twice equals Prune(g, t) once.
//
// Observability:
//
//	Each call opens a "prune.Prune" span and records the
//	wordgraph_prune_total, wordgraph_pruned_arcs_total and
//	wordgraph_prune_duration_seconds instruments on the global otel providers.
//
// Complexity: O(S + A) time, O(S + A) memory.
package prune
