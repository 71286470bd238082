package propagate_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/propagate"
)

const eps = 1e-9

func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddArc(0, 1, []string{"a"}, -1.0)
	require.NoError(t, err)
	_, err = g.AddArc(1, 2, []string{"b"}, -0.5)
	require.NoError(t, err)
	require.NoError(t, g.AddFinalState(2))

	return g
}

// diamond has two paths 0->1->3 (-1,-1) and 0->2->3 (-0.5,-2), final {3}.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithComponentWeights(core.Weights{{Name: "x", Value: 1}}))
	arcs := []struct {
		p, s  core.StateID
		w     string
		score float64
	}{
		{0, 1, "a", -1}, {0, 2, "b", -0.5}, {1, 3, "c", -1}, {2, 3, "d", -2},
	}
	for _, a := range arcs {
		_, err := g.AddArcWithComponents(a.p, a.s, []string{a.w}, a.score, []float64{a.score})
		require.NoError(t, err)
	}
	require.NoError(t, g.AddFinalState(3))

	return g
}

func TestForward_Chain(t *testing.T) {
	res, err := propagate.Forward(chain(t))
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, -1.0, -1.5}, res.Scores, eps)
	assert.Equal(t, []core.ArcID{core.InvalidArc, 0, 1}, res.BestPred)
	assert.False(t, res.AltWeightsApplied)
}

func TestBackward_Chain(t *testing.T) {
	rest, err := propagate.Backward(chain(t))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1.5, -0.5, 0}, rest, eps)
}

func TestForward_InitialScore(t *testing.T) {
	g := chain(t)
	g.SetInitialStateScore(-2)

	res, err := propagate.Forward(g)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-2, -3, -3.5}, res.Scores, eps)

	// a non-initial start ignores the initial score
	res, err = propagate.Forward(g, propagate.WithStart(1))
	require.NoError(t, err)
	assert.InDelta(t, core.SmallScore, res.Scores[0], eps)
	assert.InDelta(t, 0, res.Scores[1], eps)
	assert.InDelta(t, -0.5, res.Scores[2], eps)
}

func TestForward_PicksBestPredecessor(t *testing.T) {
	res, err := propagate.Forward(diamond(t))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, res.Scores[3], eps)
	assert.Equal(t, core.ArcID(2), res.BestPred[3])
}

func TestForward_ExcludedArcs(t *testing.T) {
	res, err := propagate.Forward(diamond(t), propagate.WithExcludedArcs(0))
	require.NoError(t, err)

	// state 1 is reached but scores the floor
	assert.InDelta(t, core.SmallScore, res.Scores[1], eps)
	assert.Equal(t, core.InvalidArc, res.BestPred[1])
	assert.InDelta(t, -2.5, res.Scores[3], eps)
	assert.Equal(t, core.ArcID(3), res.BestPred[3])
}

func TestForward_AltWeights(t *testing.T) {
	g := diamond(t)
	// doubling the single component doubles every score
	res, err := propagate.Forward(g, propagate.WithAltWeights([]float64{2}))
	require.NoError(t, err)
	assert.True(t, res.AltWeightsApplied)
	assert.InDelta(t, -4.0, res.Scores[3], eps)
}

func TestForward_IncompatibleAltWeightsFallBack(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	res, err := propagate.Forward(diamond(t),
		propagate.WithAltWeights([]float64{1, 2}),
		propagate.WithLogger(logger))
	require.NoError(t, err)
	assert.False(t, res.AltWeightsApplied)
	assert.InDelta(t, -2.0, res.Scores[3], eps)
	assert.Contains(t, buf.String(), "alternative weights cannot be applied")

	assert.ErrorIs(t, propagate.CheckAltWeights(diamond(t), []float64{1, 2}), core.ErrIncompatibleWeights)
	assert.ErrorIs(t, propagate.CheckAltWeights(diamond(t), nil), core.ErrIncompatibleWeights)
	assert.NoError(t, propagate.CheckAltWeights(diamond(t), []float64{3}))
}

func TestPrunedArcsTreatedAsAbsent(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetPruned(2, true))

	res, err := propagate.Forward(g)
	require.NoError(t, err)
	assert.InDelta(t, -2.5, res.Scores[3], eps)

	rest, err := propagate.Backward(g)
	require.NoError(t, err)
	assert.InDelta(t, core.SmallScore, rest[1], eps)

	res, err = propagate.Forward(g, propagate.WithPrunedArcs())
	require.NoError(t, err)
	assert.InDelta(t, -2.0, res.Scores[3], eps)
}

func TestForward_Errors(t *testing.T) {
	_, err := propagate.Forward(nil)
	assert.ErrorIs(t, err, propagate.ErrGraphNil)

	_, err = propagate.Forward(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = propagate.Backward(core.NewGraph())
	assert.ErrorIs(t, err, core.ErrEmptyGraph)

	_, err = propagate.Forward(chain(t), propagate.WithStart(9))
	assert.ErrorIs(t, err, core.ErrStateNotFound)
}

func TestBestFinal(t *testing.T) {
	g := chain(t)
	require.NoError(t, g.AddFinalState(1))
	require.NoError(t, g.AddFinalState(40)) // beyond the range, ignored

	res, err := propagate.Forward(g)
	require.NoError(t, err)
	s, score := propagate.BestFinal(g, res.Scores)
	assert.Equal(t, core.StateID(1), s)
	assert.InDelta(t, -1.0, score, eps)

	// finals stuck at the floor yield no winner
	s, score = propagate.BestFinal(g, []float64{core.SmallScore, core.SmallScore, core.SmallScore})
	assert.Equal(t, core.InvalidState, s)
	assert.InDelta(t, core.SmallScore, score, eps)
}

func TestBestFinal_TieGoesToLowestState(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"x"}, -1)
	_, _ = g.AddArc(0, 2, []string{"y"}, -1)
	require.NoError(t, g.AddFinalState(2))
	require.NoError(t, g.AddFinalState(1))

	res, err := propagate.Forward(g)
	require.NoError(t, err)
	s, _ := propagate.BestFinal(g, res.Scores)
	assert.Equal(t, core.StateID(1), s)
}
