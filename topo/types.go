// Package topo defines options, states and errors for ordering word graph
// arcs and states.
package topo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/wordgraph/core"
)

// Visitation states used by the state-order DFS.
const (
	White = iota // White: state not visited yet.
	Gray         // Gray: state on the recursion stack.
	Black        // Black: state and all its descendants explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("topo: graph is nil")

	// ErrAnomalousGraph indicates that a full scan placed no arc: the graph
	// has a cycle or a dependency that can never be satisfied.
	ErrAnomalousGraph = errors.New("topo: anomalous word graph")

	// ErrCycleDetected indicates a directed cycle over non-pruned arcs.
	ErrCycleDetected = errors.New("topo: cycle detected")
)

// CycleError carries the states of a detected cycle, in traversal order.
type CycleError struct {
	Cycle []core.StateID
}

// Error implements error.
func (e *CycleError) Error() string {
	parts := make([]string, len(e.Cycle))
	for i, s := range e.Cycle {
		parts[i] = fmt.Sprint(s)
	}

	return fmt.Sprintf("%v: %s", ErrCycleDetected, strings.Join(parts, " -> "))
}

// Unwrap lets errors.Is match ErrCycleDetected.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }

// Option configures Sort, OrderArcs and StateOrder.
type Option func(*options)

type options struct {
	ctx    context.Context // checked once per scan / per DFS visit
	logger *slog.Logger
}

func defaultOptions() options {
	return options{ctx: context.Background(), logger: slog.Default()}
}

// WithCancelContext sets the cancellation context. nil has no effect.
func WithCancelContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the logger used to report anomalous graphs. nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
