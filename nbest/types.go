// Package nbest defines options, errors and result types for bounded
// best-first k-best extraction.
package nbest

import (
	"context"
	"errors"
	"log/slog"

	"github.com/katalvlaran/wordgraph/core"
)

// DefaultStackSize bounds the open and closed frontiers unless overridden.
const DefaultStackSize = 10000

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("nbest: graph is nil")

	// ErrBadLength is returned for a negative list length.
	ErrBadLength = errors.New("nbest: list length must be non-negative")
)

// Option configures Search.
type Option func(*Options)

// Options holds Search settings.
type Options struct {
	// StackSize bounds each frontier; <= 0 means unbounded.
	StackSize int

	// MaxIterations stops the search after that many pops; 0 means no limit.
	MaxIterations int

	// Ctx is checked once per iteration and parents the tracing span.
	Ctx context.Context

	// Logger receives debug traces and the iteration-limit warning.
	Logger *slog.Logger
}

// DefaultOptions returns Options with DefaultStackSize, no iteration limit,
// context.Background() and slog.Default().
func DefaultOptions() Options {
	return Options{
		StackSize: DefaultStackSize,
		Ctx:       context.Background(),
		Logger:    slog.Default(),
	}
}

// WithStackSize bounds the open and closed frontiers.
func WithStackSize(n int) Option {
	return func(o *Options) { o.StackSize = n }
}

// WithMaxIterations caps the number of frontier pops.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxIterations = n
		}
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Entry is one complete translation hypothesis.
type Entry struct {
	// Score is the accumulated path score, initial-state score included.
	Score float64

	// Arcs lists the hypothesis arcs from the initial state to a final state.
	Arcs []core.ArcID

	// Words concatenates the arcs' words.
	Words []string

	// Sentence joins Words with single spaces.
	Sentence string

	// Components sums the arcs' score components, or is nil when some arc
	// lacks a component vector of the common length.
	Components []float64
}

// hyp is a partial hypothesis on a frontier.
type hyp struct {
	score float64 // accumulated g, heuristic excluded
	arcs  []core.ArcID
	last  core.StateID
}
