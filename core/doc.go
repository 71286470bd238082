// Package core provides the in-memory word graph produced by a phrase-based
// decoder for one source sentence.
//
// A word graph G = (S, A) stores:
//
//   - States: dense integers in [0, NumStates); state 0 is the initial state.
//   - Arcs: (pred, succ, words, score), indexed by insertion position (ArcID).
//   - A pruned flag per arc. Pruned arcs stay stored but are invisible to
//     ArcsToPred / ArcsToSucc and to every algorithm package.
//   - An optional score-component vector per arc, used for rescoring.
//   - A set of final states, the initial-state score and a named
//     component-weight vector.
//
// Why an arena?
//
//   - ArcIDs double as positions in a topological arc order; algorithms walk
//     the arc list front to back (forward scores) or back to front (rest scores).
//   - Parallel slices keep flags and components next to their arc without
//     per-arc allocation.
//
// Configuration Options (GraphOption):
//
//	- WithInitialScore(score float64)
//	    Score carried by state 0 before any arc is applied.
//
//	- WithComponentWeights(w Weights)
//	    Stores the weight vector as-is; arc scores are not recomputed.
//
//	- WithSparseStates()
//	    Accepts arcs whose endpoints skip ahead of the known states. Without
//	    it, insertion fails with ErrStateOrder when pred is unknown or succ
//	    is more than one past the last state.
//
// Core Methods:
//
//	// Construction
//	AddArc(pred, succ, words, score) (ArcID, error)                       // O(1)†
//	AddArcWithComponents(pred, succ, words, score, comps) (ArcID, error)  // O(1)†
//	AddFinalState(s) error                                                // O(1)
//
//	// Queries (checked: out-of-range ids return ErrArcNotFound / ErrStateNotFound)
//	Arc(id), Components(id), ArcsToPred(s), ArcsToSucc(s), IsFinal(s)
//	StateRange(), ArcRange()   // ErrEmptyGraph on a graph without arcs
//	NumStates(), NumArcs(), NumNonPrunedArcs(), Density(refLen)
//
//	// Mutation
//	SetComponentWeights(w) int // rescoring, returns the number of rescored arcs
//	SetPruned(id, bool), ResetPruned()
//	ReorderArcs(order) error   // permutation, adjacency rebuilt
//	Clone(), Clear()
//
// † amortized; plus the size of words and comps, which are copied.
//
// Concurrency:
//
//	Every method takes the graph's RWMutex, so single calls are safe across
//	goroutines. Multi-call pipelines (rescore, order, prune, search) are not
//	atomic: give each pipeline its own graph, or Clone before destructive steps.
package core
