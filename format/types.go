// Package format reads and writes word graphs, n-best lists and best-path
// reports in the line-oriented text format used by phrase-based decoders.
package format

import "errors"

// Field separator between the score, component and word sections.
const separator = "|||"

var (
	// ErrSyntax reports a malformed line; the wrapping error names the line.
	ErrSyntax = errors.New("format: syntax error")

	// ErrGraphNil is returned when a nil graph is written.
	ErrGraphNil = errors.New("format: graph is nil")
)

// WriteOption configures Write and Save.
type WriteOption func(*writeOptions)

type writeOptions struct {
	onlyUseful bool
}

// OnlyUseful restricts the written arcs to those joining two useful states
// (see reach.UsefulStates). States keep their numbers.
func OnlyUseful() WriteOption {
	return func(o *writeOptions) { o.onlyUseful = true }
}
