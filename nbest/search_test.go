package nbest_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/bestpath"
	"github.com/katalvlaran/wordgraph/builder"
	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/nbest"
)

// sausage returns the two-slot network
//
//	0 -a(-1)-> 1 -c(-0.5)-> 2
//	0 -b(-2)-> 1 -d(-3)->   2
//
// whose four paths score ac=-1.5, bc=-2.5, ad=-4, bd=-5.
func sausage(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, _ = g.AddArcWithComponents(0, 1, []string{"a"}, -1, []float64{-1, 0})
	_, _ = g.AddArcWithComponents(0, 1, []string{"b"}, -2, []float64{-1, -1})
	_, _ = g.AddArcWithComponents(1, 2, []string{"c"}, -0.5, []float64{0, -0.5})
	_, _ = g.AddArcWithComponents(1, 2, []string{"d"}, -3, []float64{-2, -1})
	require.NoError(t, g.AddFinalState(2))

	return g
}

func scores(es []nbest.Entry) []float64 {
	out := make([]float64, len(es))
	for i, e := range es {
		out[i] = e.Score
	}
	return out
}

func TestSearch_OrderedList(t *testing.T) {
	g := sausage(t)

	es, err := nbest.Search(g, 3)
	require.NoError(t, err)
	require.Len(t, es, 3)
	assert.InDeltaSlice(t, []float64{-1.5, -2.5, -4}, scores(es), 1e-12)

	assert.Equal(t, "a c", es[0].Sentence)
	assert.Equal(t, []string{"b", "c"}, es[1].Words)
	assert.Equal(t, []core.ArcID{0, 3}, es[2].Arcs)
	assert.InDeltaSlice(t, []float64{-1, -0.5}, es[0].Components, 1e-12)
}

func TestSearch_FewerPathsThanRequested(t *testing.T) {
	g := sausage(t)
	es, err := nbest.Search(g, 10)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1.5, -2.5, -4, -5}, scores(es), 1e-12)
}

func TestSearch_EmptyInputs(t *testing.T) {
	es, err := nbest.Search(core.NewGraph(), 5)
	require.NoError(t, err)
	assert.Empty(t, es)

	es, err = nbest.Search(sausage(t), 0)
	require.NoError(t, err)
	assert.Empty(t, es)

	_, err = nbest.Search(nil, 1)
	assert.ErrorIs(t, err, nbest.ErrGraphNil)
	_, err = nbest.Search(sausage(t), -1)
	assert.ErrorIs(t, err, nbest.ErrBadLength)
}

func TestSearch_SkipsPrunedArcs(t *testing.T) {
	g := sausage(t)
	require.NoError(t, g.SetPruned(0, true))

	es, err := nbest.Search(g, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2.5, -5}, scores(es), 1e-12)
}

func TestSearch_InitialScoreIncluded(t *testing.T) {
	g := sausage(t)
	g.SetInitialStateScore(-1)

	es, err := nbest.Search(g, 1)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.InDelta(t, -2.5, es[0].Score, 1e-12)
}

func TestSearch_TiesKeepArcOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"x"}, -1)
	_, _ = g.AddArc(0, 1, []string{"y"}, -1)
	require.NoError(t, g.AddFinalState(1))

	es, err := nbest.Search(g, 2)
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, "x", es[0].Sentence)
	assert.Equal(t, "y", es[1].Sentence)
}

func TestSearch_CompleteHypothesisNotExtended(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"a"}, -1)
	_, _ = g.AddArc(1, 2, []string{"b"}, -1)
	require.NoError(t, g.AddFinalState(1))
	require.NoError(t, g.AddFinalState(2))

	es, err := nbest.Search(g, 5)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Equal(t, "a", es[0].Sentence)
}

func TestSearch_MixedComponentsDropped(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArcWithComponents(0, 1, []string{"a"}, -1, []float64{-1})
	_, _ = g.AddArc(1, 2, []string{"b"}, -1)
	require.NoError(t, g.AddFinalState(2))

	es, err := nbest.Search(g, 1)
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.Nil(t, es[0].Components)
}

func TestSearch_SmallStackIsApproximate(t *testing.T) {
	es, err := nbest.Search(sausage(t), 3, nbest.WithStackSize(1))
	require.NoError(t, err)
	require.Len(t, es, 1)
	assert.InDelta(t, -1.5, es[0].Score, 1e-12)
}

func TestSearch_IterationLimit(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	es, err := nbest.Search(sausage(t), 3, nbest.WithMaxIterations(1), nbest.WithLogger(logger))
	require.NoError(t, err)
	assert.Empty(t, es)
	assert.Contains(t, buf.String(), "iteration limit")
}

func TestSearch_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	es, err := nbest.Search(sausage(t), 3, nbest.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, es)
}

func TestSearch_FirstEntryMatchesBestPath(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformScore(-5, 0)},
			builder.RandomLattice(12, 20))
		require.NoError(t, err)

		best, err := bestpath.BestPathToFinal(g, core.InitialState)
		require.NoError(t, err)
		es, err := nbest.Search(g, 4)
		require.NoError(t, err)
		require.NotEmpty(t, es)

		assert.InDelta(t, best.Score, es[0].Score, 1e-9, "seed %d", seed)
		for i := 1; i < len(es); i++ {
			assert.GreaterOrEqual(t, es[i-1].Score, es[i].Score, "seed %d", seed)
		}
	}
}

func TestSearch_ConfusionNetworkCount(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformScore(-3, -0.1), builder.WithComponents(2)},
		builder.ConfusionNetwork(3, 3))
	require.NoError(t, err)

	es, err := nbest.Search(g, 100)
	require.NoError(t, err)
	assert.Len(t, es, 27)

	seen := make(map[string]bool, len(es))
	for _, e := range es {
		assert.False(t, seen[e.Sentence], "duplicate %q", e.Sentence)
		seen[e.Sentence] = true
		require.Len(t, e.Components, 2)
		assert.InDelta(t, e.Score, e.Components[0]+e.Components[1], 1e-9)
	}
}
