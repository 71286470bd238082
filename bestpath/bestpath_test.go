package bestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/bestpath"
	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/propagate"
	"github.com/katalvlaran/wordgraph/reach"
)

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithScoreFn(builder.ConstantScoreFn(-0.75))},
		builder.Chain("a", "b"))
	require.NoError(t, err)
	return g
}

func TestBestPath_Chain(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"a"}, -1.0)
	_, _ = g.AddArc(1, 2, []string{"b"}, -0.5)
	require.NoError(t, g.AddFinalState(2))

	p, err := bestpath.BestPathToFinal(g, core.InitialState)
	require.NoError(t, err)
	assert.True(t, p.Found())
	assert.InDelta(t, -1.5, p.Score, 1e-12)
	assert.Equal(t, core.StateID(2), p.Final)
	assert.Equal(t, []core.ArcID{1, 0}, p.Arcs)
	assert.Equal(t, []core.ArcID{0, 1}, p.Forward())

	words, err := p.Words(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, words)
	s, _ := p.Sentence(g)
	assert.Equal(t, "a b", s)
}

func TestBestPath_GeneratedChain(t *testing.T) {
	g := chain(t)
	p, err := bestpath.BestPathToFinal(g, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1.5, p.Score, 1e-12)
}

func TestBestPath_NoFinalReachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"a"}, -1)

	p, err := bestpath.BestPathToFinal(g, 0)
	require.NoError(t, err)
	assert.False(t, p.Found())
	assert.Equal(t, core.InvalidState, p.Final)
	assert.InDelta(t, core.SmallScore, p.Score, 1e-6)
	assert.Empty(t, p.Arcs)
}

func TestBestPath_ExcludedArc(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"good"}, -0.1)
	_, _ = g.AddArc(0, 1, []string{"worse"}, -0.9)
	require.NoError(t, g.AddFinalState(1))

	p, err := bestpath.BestPathToFinal(g, 0, bestpath.WithExcludedArcs(0))
	require.NoError(t, err)
	assert.Equal(t, []core.ArcID{1}, p.Arcs)
	assert.InDelta(t, -0.9, p.Score, 1e-12)
}

func TestBestPath_AltWeights(t *testing.T) {
	g := core.NewGraph(core.WithComponentWeights(core.Weights{{Name: "lm", Value: 1}, {Name: "tm", Value: 1}}))
	_, _ = g.AddArcWithComponents(0, 1, []string{"lm-friendly"}, -1.5, []float64{-0.5, -1})
	_, _ = g.AddArcWithComponents(0, 1, []string{"tm-friendly"}, -1.6, []float64{-1.5, -0.1})
	require.NoError(t, g.AddFinalState(1))

	p, err := bestpath.BestPathToFinal(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.ArcID{0}, p.Arcs)

	// weigh the translation model up
	p, err = bestpath.BestPathToFinal(g, 0, bestpath.WithAltWeights([]float64{0.1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []core.ArcID{1}, p.Arcs)
	assert.InDelta(t, -0.25, p.Score, 1e-12)
}

func TestBestPath_ScoreMatchesForwardFromEveryState(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(11), builder.WithUniformScore(-2, 0)},
		builder.RandomLattice(20, 30))
	require.NoError(t, err)
	r, err := reach.Reachable(g, 0)
	require.NoError(t, err)

	for s, ok := range r {
		if !ok {
			continue
		}
		start := core.StateID(s)
		p, err := bestpath.BestPathToFinal(g, start)
		require.NoError(t, err)
		fwd, err := propagate.Forward(g, propagate.WithStart(start))
		require.NoError(t, err)
		_, want := propagate.BestFinal(g, fwd.Scores)
		assert.InDelta(t, want, p.Score, 1e-9, "start %d", s)

		// the arcs add up to the score
		var sum float64
		if start == core.InitialState {
			sum = g.InitialStateScore()
		}
		for _, id := range p.Arcs {
			a, _ := g.Arc(id)
			sum += a.Score
		}
		if p.Found() {
			assert.InDelta(t, p.Score, sum, 1e-9, "start %d", s)
		}
	}
}

func TestBestPath_Errors(t *testing.T) {
	_, err := bestpath.BestPathToFinal(nil, 0)
	assert.ErrorIs(t, err, bestpath.ErrGraphNil)
	_, err = bestpath.BestPathToFinal(core.NewGraph(), 0)
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	// a link into a final state that was never set
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, nil, -1)
	require.NoError(t, g.AddFinalState(1))
	fwd := &propagate.ForwardResult{
		Start:    0,
		Scores:   []float64{0, -1},
		BestPred: []core.ArcID{core.InvalidArc, core.InvalidArc},
	}
	_, err = bestpath.FromForward(g, fwd)
	assert.ErrorIs(t, err, bestpath.ErrBrokenChain)
}
