// Package nbest extracts the k best complete hypotheses of a word graph.
//
// Search runs a best-first (A*) search from the initial state. A partial
// hypothesis is a sequence of non-pruned arcs; its priority is its
// accumulated score plus the exact rest score of the state it ends in, so
// complete hypotheses leave the open frontier in descending score order.
// A hypothesis is complete once it ends in a final state; complete
// hypotheses are never extended through that state.
//
// Frontiers are bounded Stacks (default DefaultStackSize). On overflow the
// lowest-priority entry is dropped, which can make the list approximate on
// very dense graphs.
//
// Options:
//
//	WithStackSize(n)      frontier bound, <= 0 unbounded
//	WithMaxIterations(n)  stop after n pops, 0 unlimited
//	WithContext(ctx)      cancellation and tracing parent
//	WithLogger(l)         slog logger
//
// Arcs are expected in topological order, as for every algorithm relying
// on rest scores (see package topo).
package nbest
