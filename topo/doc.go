// Package topo orders word graph arcs and states topologically.
//
// What:
//
//   - Sort / OrderArcs: repeated scans over the arc list placing each arc
//     once every non-pruned arc into its predecessor has been placed. The
//     resulting arc order is what package propagate requires.
//   - StateOrder: DFS reverse post-order over states, with cycle reporting.
//   - IsOrdered: cheap check whether OrderArcs is needed at all.
//
// Why:
//
//	Decoders usually emit arcs in a usable order, but graphs that were
//	merged, edited or loaded from foreign tools may not be. Propagating on a
//	misordered graph yields silently wrong scores, so consumers that cannot
//	trust the producer call OrderArcs first.
//
// Errors:
//
//	ErrGraphNil       - nil graph.
//	ErrAnomalousGraph - a scan placed no arc; the graph is left untouched.
//	ErrCycleDetected  - via *CycleError, from StateOrder or wrapped by Sort.
//
// Cancellation: WithCancelContext(ctx) is checked once per scan and once per
// DFS visit.
package topo
