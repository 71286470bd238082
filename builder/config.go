// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// config.go - resolved builder configuration.
//
// Defaults:
//   • no RNG (stochastic constructors fail with ErrNeedRandSource)
//   • constant arc score -1
//   • words "w<slot>_<alt>"
//   • no score components

package builder

import (
	"fmt"
	"math/rand"
)

const defaultArcScore = -1.0

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	rng *rand.Rand

	// scoreFn draws one arc score, or one component when components > 0.
	scoreFn ScoreFn

	// wordFn names the word emitted by alternative alt of slot.
	wordFn func(slot, alt int) string

	// components > 0 attaches that many components to each arc; the arc
	// score becomes their sum under unit weights.
	components int
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scoreFn: ConstantScoreFn(defaultArcScore),
		wordFn:  defaultWord,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func defaultWord(slot, alt int) string {
	return fmt.Sprintf("w%d_%d", slot, alt)
}
