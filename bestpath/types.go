// Package bestpath defines the Path result and options for best-path
// backtrace over a core.Graph.
package bestpath

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/propagate"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("bestpath: graph is nil")

	// ErrBrokenChain indicates that best-predecessor links from the best
	// final state do not lead back to the start state.
	ErrBrokenChain = errors.New("bestpath: broken predecessor chain")
)

// Option configures BestPathToFinal. It shares the forward-pass options.
type Option = propagate.Option

// WithExcludedArcs forbids the given arcs.
func WithExcludedArcs(ids ...core.ArcID) Option { return propagate.WithExcludedArcs(ids...) }

// WithAltWeights rescores arcs on the fly with w.
func WithAltWeights(w []float64) Option { return propagate.WithAltWeights(w) }

// WithLogger receives the warning logged when alternative weights do not fit.
func WithLogger(l *slog.Logger) Option { return propagate.WithLogger(l) }

// Path is the best-scoring path from Start to its best final state.
type Path struct {
	// Start is the state the search started from.
	Start core.StateID

	// Final is the best final state, or core.InvalidState if none is reachable.
	Final core.StateID

	// Score is the forward score of Final, or core.SmallScore.
	Score float64

	// Arcs lists the arcs from Final back to Start (end-to-start order).
	Arcs []core.ArcID
}

// Found reports whether a final state was reached.
func (p *Path) Found() bool {
	return p.Final != core.InvalidState
}

// Forward returns Arcs in start-to-end order.
func (p *Path) Forward() []core.ArcID {
	out := make([]core.ArcID, len(p.Arcs))
	for i, id := range p.Arcs {
		out[len(p.Arcs)-1-i] = id
	}

	return out
}

// Words concatenates the words of the path's arcs from start to end.
func (p *Path) Words(g *core.Graph) ([]string, error) {
	var words []string
	for _, id := range p.Forward() {
		a, err := g.Arc(id)
		if err != nil {
			return nil, err
		}
		words = append(words, a.Words...)
	}

	return words, nil
}

// Sentence joins Words with single spaces.
func (p *Path) Sentence(g *core.Graph) (string, error) {
	words, err := p.Words(g)
	if err != nil {
		return "", err
	}

	return strings.Join(words, " "), nil
}
