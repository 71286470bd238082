// Package reach provides tunable options, result types and errors for
// reachability analysis over a core.Graph.
package reach

import (
	"context"
	"errors"

	"github.com/katalvlaran/wordgraph/core"
)

// Sentinel errors for reachability analysis.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")
)

// Option configures reachability analysis via functional arguments.
type Option func(*Options)

// Options holds parameters for a reachability walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Useful describes the states that are reachable from the initial state and
// can reach a final state, over non-pruned arcs.
type Useful struct {
	// Mask[s] reports whether state s is useful.
	Mask []bool

	// Remap[s] is the dense new index of a useful state in original relative
	// order, or core.InvalidState.
	Remap []core.StateID

	// Count is the number of useful states.
	Count int
}

// IsUseful reports whether s is useful. Out-of-range states are not.
func (u *Useful) IsUseful(s core.StateID) bool {
	return s >= 0 && int(s) < len(u.Mask) && u.Mask[s]
}

// NewID returns the remapped index of s, or core.InvalidState.
func (u *Useful) NewID(s core.StateID) core.StateID {
	if !u.IsUseful(s) {
		return core.InvalidState
	}

	return u.Remap[s]
}
