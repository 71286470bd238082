// Package propagate defines options and result types for forward and
// backward score propagation over a core.Graph.
package propagate

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/wordgraph/core"
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("propagate: graph is nil")

// Option configures a propagation pass via functional arguments.
type Option func(*Options)

// Options holds the parameters of a propagation pass.
type Options struct {
	// Start is the state the forward pass starts from. Default core.InitialState.
	Start core.StateID

	// Excluded arcs contribute core.SmallScore instead of their score.
	Excluded map[core.ArcID]struct{}

	// AltWeights, when non-empty and applicable, replace each arc's stored
	// score by the dot product with its component vector.
	AltWeights []float64

	// IncludePruned makes the pass treat pruned arcs as present.
	IncludePruned bool

	// Logger receives the incompatible-weights warning.
	Logger *slog.Logger
}

// DefaultOptions returns Options that start from the initial state with
// no exclusions, no alternative weights, pruned arcs skipped and the
// default slog logger.
func DefaultOptions() Options {
	return Options{
		Start:  core.InitialState,
		Logger: slog.Default(),
	}
}

// WithStart starts the forward pass at s. The start state scores 0 unless
// it is the initial state, which carries the graph's initial score.
func WithStart(s core.StateID) Option {
	return func(o *Options) { o.Start = s }
}

// WithExcludedArcs forbids the given arcs in the forward pass.
func WithExcludedArcs(ids ...core.ArcID) Option {
	return func(o *Options) {
		if o.Excluded == nil {
			o.Excluded = make(map[core.ArcID]struct{}, len(ids))
		}
		for _, id := range ids {
			o.Excluded[id] = struct{}{}
		}
	}
}

// WithAltWeights rescores arcs on the fly with w in the forward pass.
// If w does not fit the graph a warning is logged and stored scores are used.
func WithAltWeights(w []float64) Option {
	return func(o *Options) { o.AltWeights = append([]float64(nil), w...) }
}

// WithPrunedArcs makes the pass ignore pruned flags.
func WithPrunedArcs() Option {
	return func(o *Options) { o.IncludePruned = true }
}

// WithLogger sets the logger used for diagnostics. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// ForwardResult holds the output of Forward.
type ForwardResult struct {
	// Start is the state the pass started from.
	Start core.StateID

	// Scores[s] is the best score of any path Start -> s, or core.SmallScore.
	Scores []float64

	// BestPred[s] is the last arc of that best path, or core.InvalidArc.
	BestPred []core.ArcID

	// AltWeightsApplied reports whether alternative weights were used.
	AltWeightsApplied bool
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
