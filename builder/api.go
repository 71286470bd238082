// SPDX-License-Identifier: MIT
// Package: wordgraph/builder
//
// api.go - public entry points.
//
// Design contract:
//   • One orchestrator: BuildGraph(gopts, bopts, cons...).
//   • Constructors append to the graph starting at its current last state,
//     so they compose into longer lattices.
//   • Every constructor emits arcs in a topological order and registers the
//     state it ends in as final.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/wordgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies
// every constructor in order. When WithComponents is set the unit component
// weights are installed after all constructors ran.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if cfg.components > 0 {
		w := make(core.Weights, cfg.components)
		for i := range w {
			w[i] = core.Weight{Name: "c" + strconv.Itoa(i), Value: 1}
		}
		g.SetComponentWeights(w)
	}

	return g, nil
}

// lastState is the state new constructors continue from.
func lastState(g *core.Graph) core.StateID {
	if n := g.NumStates(); n > 0 {
		return core.StateID(n - 1)
	}

	return core.InitialState
}

// nextState is the index a newly introduced state receives.
func nextState(g *core.Graph) core.StateID {
	return core.StateID(max(g.NumStates(), 1))
}

// addArc inserts one arc, drawing its score (or components) from cfg.
func addArc(g *core.Graph, cfg builderConfig, method string, p, s core.StateID, words []string) error {
	var err error
	if cfg.components > 0 {
		comps := make([]float64, cfg.components)
		var sum float64
		for i := range comps {
			comps[i] = cfg.scoreFn(cfg.rng)
			sum += comps[i]
		}
		_, err = g.AddArcWithComponents(p, s, words, sum, comps)
	} else {
		_, err = g.AddArc(p, s, words, cfg.scoreFn(cfg.rng))
	}
	if err != nil {
		return fmt.Errorf("%s: arc %d -> %d: %v: %w", method, p, s, err, ErrConstructFailed)
	}

	return nil
}
