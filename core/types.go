// Package core defines the word graph store: arena-indexed states and arcs,
// the parallel pruned-flag and score-component arrays, the final-state set,
// and the component-weight vector used for rescoring.
//
// This file declares StateID, ArcID, Arc, Weight, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyGraph          - range or propagation query on a graph with zero arcs.
//	ErrInvalidState        - negative state index.
//	ErrStateOrder          - arc introduces a state out of the monotonic order.
//	ErrStateNotFound       - state index beyond the current range.
//	ErrArcNotFound         - arc index beyond the current range.
//	ErrBadReferenceLength  - density requested with a non-positive reference length.
//	ErrBadPermutation      - ReorderArcs received something other than a permutation.
//	ErrIncompatibleWeights - a weight vector does not match the stored component vectors.
package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates a range or propagation query on a graph without arcs.
	ErrEmptyGraph = errors.New("core: graph has no arcs")

	// ErrInvalidState indicates a negative state index.
	ErrInvalidState = errors.New("core: invalid state index")

	// ErrStateOrder indicates an arc whose endpoints skip ahead of the known states.
	ErrStateOrder = errors.New("core: state introduced out of order")

	// ErrStateNotFound indicates a state index outside [0, NumStates).
	ErrStateNotFound = errors.New("core: state not found")

	// ErrArcNotFound indicates an arc index outside [0, NumArcs).
	ErrArcNotFound = errors.New("core: arc not found")

	// ErrBadReferenceLength indicates Density was called with refLen <= 0.
	ErrBadReferenceLength = errors.New("core: reference length must be positive")

	// ErrBadPermutation indicates ReorderArcs received an invalid arc order.
	ErrBadPermutation = errors.New("core: arc order is not a permutation")

	// ErrIncompatibleWeights indicates a weight vector whose length does not
	// match the stored weights or some arc's component vector.
	ErrIncompatibleWeights = errors.New("core: incompatible component weights")
)

// StateID indexes a state in the dense range [0, NumStates).
type StateID int

// ArcID indexes an arc in insertion (or reordered) position.
type ArcID int

const (
	// InitialState is the unique start state of every word graph.
	InitialState StateID = 0

	// InvalidState marks "no state", e.g. the final state of an empty path.
	InvalidState StateID = -1

	// InvalidArc marks "no arc", e.g. the best predecessor of an unreached state.
	InvalidArc ArcID = -1

	// SmallScore is the log-score floor; propagated scores never drop below it.
	SmallScore = -999999999.0

	// Unlimited is the pruning threshold that clears every pruned flag.
	Unlimited = -1.0
)

// Arc is one scored transition pred -> succ emitting Words.
// An empty Words slice is a null (epsilon) arc.
type Arc struct {
	// Pred is the source state.
	Pred StateID

	// Succ is the destination state.
	Succ StateID

	// Words is the target-language phrase carried by the arc.
	Words []string

	// Score is the log score, possibly recomputed by SetComponentWeights.
	Score float64
}

// Weight is one named log-linear component weight.
type Weight struct {
	Name  string
	Value float64
}

// Weights is an ordered component-weight vector.
type Weights []Weight

// Values returns the bare weight values in order.
func (w Weights) Values() []float64 {
	out := make([]float64, len(w))
	for i := range w {
		out[i] = w[i].Value
	}

	return out
}

// Dot returns Σ w[i]*comps[i]. Callers check the lengths first.
func Dot(w []float64, comps []float64) float64 {
	var sum float64
	for i := range comps {
		sum += w[i] * comps[i]
	}

	return sum
}

// ClampScore raises s to SmallScore when it falls below the floor.
func ClampScore(s float64) float64 {
	if s < SmallScore || math.IsNaN(s) {
		return SmallScore
	}

	return s
}

// stateAdj holds the incoming and outgoing arc lists of one state,
// pruned arcs included. Lists are kept in ascending ArcID order.
type stateAdj struct {
	in  []ArcID
	out []ArcID
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithInitialScore sets the score carried by the initial state.
func WithInitialScore(score float64) GraphOption {
	return func(g *Graph) { g.initialScore = score }
}

// WithComponentWeights stores w without rescoring any arc.
// This mirrors loading a graph whose arc scores were already computed with w.
func WithComponentWeights(w Weights) GraphOption {
	return func(g *Graph) { g.weights = append(Weights(nil), w...) }
}

// WithSparseStates lets arcs reference states beyond NumStates().
// Skipped indices become isolated states.
func WithSparseStates() GraphOption {
	return func(g *Graph) { g.sparse = true }
}

// Graph is an arena-indexed word graph.
//
// arcs, pruned and comps are parallel slices indexed by ArcID; states is
// indexed by StateID. mu guards every field; a Graph may be shared between
// readers, but algorithms that mutate it (rescoring, pruning, reordering)
// expect exclusive ownership for the duration of the call sequence.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	sparse bool

	// Storage
	arcs   []Arc
	pruned []bool
	comps  [][]float64
	states []stateAdj
	finals map[StateID]struct{}

	initialScore float64
	weights      Weights
}

// NewGraph creates an empty Graph with the given options.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{finals: make(map[StateID]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
