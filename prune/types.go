// Package prune defines options and errors for threshold pruning.
package prune

import (
	"context"
	"errors"
	"log/slog"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("prune: graph is nil")

	// ErrBadThreshold is returned for a negative threshold other than core.Unlimited.
	ErrBadThreshold = errors.New("prune: threshold must be non-negative or Unlimited")
)

// Option configures Prune.
type Option func(*Options)

// Options holds Prune settings.
type Options struct {
	// Ctx parents the tracing span and metric records.
	Ctx context.Context

	// Logger receives the per-call summary at debug level.
	Logger *slog.Logger
}

// DefaultOptions returns Options with context.Background() and slog.Default().
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Logger: slog.Default()}
}

// WithContext sets the parent context. nil is ignored.
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
