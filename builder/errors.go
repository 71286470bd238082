// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w; sentinels carry no parameters.

package builder

import "errors"

// ErrTooFewStates indicates a size parameter below the constructor minimum.
var ErrTooFewStates = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed arc insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
