// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// score_fn.go - arc score generators.
//
// All generators return log scores (<= 0). Stochastic generators draw from
// the RNG passed in; with a nil RNG they return the midpoint of their range.

package builder

import "math/rand"

// ScoreFn draws one log score.
type ScoreFn func(r *rand.Rand) float64

// ConstantScoreFn always returns value.
func ConstantScoreFn(value float64) ScoreFn {
	return func(*rand.Rand) float64 { return value }
}

// UniformScoreFn draws uniformly from [min, max).
// Panics if min > max or max > 0.
func UniformScoreFn(min, max float64) ScoreFn {
	if min > max || max > 0 {
		panic("builder: UniformScoreFn requires min <= max <= 0")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return (min + max) / 2
		}
		return min + r.Float64()*(max-min)
	}
}

// WithUniformScore is shorthand for WithScoreFn(UniformScoreFn(min, max)).
func WithUniformScore(min, max float64) BuilderOption {
	return WithScoreFn(UniformScoreFn(min, max))
}
