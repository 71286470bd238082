package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/core"
)

// buildChain returns the two-arc graph 0 -a-> 1 -b-> 2 with final state 2.
func buildChain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddArc(0, 1, []string{"a"}, -1.0)
	require.NoError(t, err)
	_, err = g.AddArc(1, 2, []string{"b"}, -0.5)
	require.NoError(t, err)
	require.NoError(t, g.AddFinalState(2))

	return g
}

func TestEmptyGraphRanges(t *testing.T) {
	g := core.NewGraph()
	assert.True(t, g.Empty())
	assert.Equal(t, 0, g.NumStates())

	_, _, err := g.StateRange()
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
	_, _, err = g.ArcRange()
	assert.ErrorIs(t, err, core.ErrEmptyGraph)
}

func TestAddArc_AssignsDenseIDs(t *testing.T) {
	g := buildChain(t)

	assert.Equal(t, 3, g.NumStates())
	assert.Equal(t, 2, g.NumArcs())

	first, last, err := g.StateRange()
	require.NoError(t, err)
	assert.Equal(t, core.StateID(0), first)
	assert.Equal(t, core.StateID(2), last)

	a, err := g.Arc(1)
	require.NoError(t, err)
	assert.Equal(t, core.StateID(1), a.Pred)
	assert.Equal(t, core.StateID(2), a.Succ)
	assert.Equal(t, []string{"b"}, a.Words)
	assert.InDelta(t, -0.5, a.Score, 1e-12)
}

func TestAddArc_StateOrder(t *testing.T) {
	g := core.NewGraph()

	// successor skipping ahead
	_, err := g.AddArc(0, 2, nil, 0)
	assert.ErrorIs(t, err, core.ErrStateOrder)

	// unknown predecessor
	_, err = g.AddArc(0, 1, nil, 0)
	require.NoError(t, err)
	_, err = g.AddArc(5, 2, nil, 0)
	assert.ErrorIs(t, err, core.ErrStateOrder)

	// negative ids
	_, err = g.AddArc(-1, 1, nil, 0)
	assert.ErrorIs(t, err, core.ErrInvalidState)

	// failed insertions leave the graph unchanged
	assert.Equal(t, 1, g.NumArcs())
	assert.Equal(t, 2, g.NumStates())
}

func TestAddArc_SparseStates(t *testing.T) {
	g := core.NewGraph(core.WithSparseStates())
	_, err := g.AddArc(0, 4, []string{"x"}, -2)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumStates())

	in, err := g.ArcsToPred(3)
	require.NoError(t, err)
	assert.Empty(t, in)
}

func TestAddArc_CopiesInputs(t *testing.T) {
	g := core.NewGraph()
	words := []string{"hello"}
	comps := []float64{1, 2}
	id, err := g.AddArcWithComponents(0, 1, words, 0, comps)
	require.NoError(t, err)

	words[0] = "mutated"
	comps[0] = 99

	a, _ := g.Arc(id)
	c, _ := g.Components(id)
	assert.Equal(t, []string{"hello"}, a.Words)
	assert.Equal(t, []float64{1, 2}, c)
}

func TestCheckedLookups(t *testing.T) {
	g := buildChain(t)

	_, err := g.Arc(7)
	assert.ErrorIs(t, err, core.ErrArcNotFound)
	_, err = g.Arc(-1)
	assert.ErrorIs(t, err, core.ErrArcNotFound)
	_, err = g.Components(2)
	assert.ErrorIs(t, err, core.ErrArcNotFound)
	_, err = g.ArcsToSucc(3)
	assert.ErrorIs(t, err, core.ErrStateNotFound)
	assert.ErrorIs(t, g.SetPruned(5, true), core.ErrArcNotFound)

	c, err := g.Components(0)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestFinalStates(t *testing.T) {
	g := buildChain(t)
	require.NoError(t, g.AddFinalState(2))
	require.NoError(t, g.AddFinalState(1))
	assert.ErrorIs(t, g.AddFinalState(-3), core.ErrInvalidState)

	assert.Equal(t, []core.StateID{1, 2}, g.FinalStates())
	assert.True(t, g.IsFinal(2))
	assert.False(t, g.IsFinal(0))
}

func TestPrunedArcsHiddenFromAdjacency(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"a"}, -1)
	_, _ = g.AddArc(0, 1, []string{"b"}, -2)
	require.NoError(t, g.SetPruned(1, true))

	out, err := g.ArcsToSucc(0)
	require.NoError(t, err)
	assert.Equal(t, []core.ArcID{0}, out)

	all, err := g.AllArcsToPred(1)
	require.NoError(t, err)
	assert.Equal(t, []core.ArcID{0, 1}, all)

	assert.Equal(t, 2, g.NumArcs())
	assert.Equal(t, 1, g.NumNonPrunedArcs())

	g.ResetPruned()
	assert.Equal(t, 2, g.NumNonPrunedArcs())
}

func TestDensity(t *testing.T) {
	g := buildChain(t)
	d, err := g.Density(4)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-12)

	_, err = g.Density(0)
	assert.ErrorIs(t, err, core.ErrBadReferenceLength)
}

func TestSetComponentWeights_RescoresMatchingArcs(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArcWithComponents(0, 1, []string{"a"}, -9, []float64{1, 2})
	_, _ = g.AddArcWithComponents(1, 2, []string{"b"}, -9, []float64{1})
	_, _ = g.AddArc(2, 3, []string{"c"}, -9)

	n := g.SetComponentWeights(core.Weights{{Name: "lm", Value: 0.5}, {Name: "tm", Value: -1}})
	assert.Equal(t, 1, n)

	a0, _ := g.Arc(0)
	a1, _ := g.Arc(1)
	a2, _ := g.Arc(2)
	assert.InDelta(t, 0.5*1-1*2, a0.Score, 1e-12)
	assert.InDelta(t, -9, a1.Score, 1e-12)
	assert.InDelta(t, -9, a2.Score, 1e-12)

	w := g.ComponentWeights()
	require.Len(t, w, 2)
	assert.Equal(t, "lm", w[0].Name)
	w[0].Value = 100
	assert.InDelta(t, 0.5, g.ComponentWeights()[0].Value, 1e-12)
}

func TestWithComponentWeights_DoesNotRescore(t *testing.T) {
	g := core.NewGraph(core.WithComponentWeights(core.Weights{{Name: "w", Value: 2}}))
	_, _ = g.AddArcWithComponents(0, 1, nil, -3, []float64{1})

	a, _ := g.Arc(0)
	assert.InDelta(t, -3, a.Score, 1e-12)
	assert.NoError(t, g.CheckWeightValues([]float64{1}))
	assert.ErrorIs(t, g.CheckWeightValues([]float64{1, 2}), core.ErrIncompatibleWeights)
}

func TestReorderArcs(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddArcWithComponents(0, 1, []string{"a"}, -1, []float64{1})
	_, _ = g.AddArc(1, 2, []string{"b"}, -2)
	require.NoError(t, g.SetPruned(0, true))

	require.NoError(t, g.ReorderArcs([]core.ArcID{1, 0}))

	a0, _ := g.Arc(0)
	assert.Equal(t, []string{"b"}, a0.Words)
	p, _ := g.Pruned(1)
	assert.True(t, p)
	c, _ := g.Components(1)
	assert.Equal(t, []float64{1}, c)
	all, _ := g.AllArcsToPred(2)
	assert.Equal(t, []core.ArcID{0}, all)

	assert.ErrorIs(t, g.ReorderArcs([]core.ArcID{0, 0}), core.ErrBadPermutation)
	assert.ErrorIs(t, g.ReorderArcs([]core.ArcID{0}), core.ErrBadPermutation)
	a0, _ = g.Arc(0)
	assert.Equal(t, []string{"b"}, a0.Words, "failed reorder must not modify the graph")
}

func TestCloneIsIndependent(t *testing.T) {
	g := buildChain(t)
	g.SetInitialStateScore(-0.25)
	clone := g.Clone()

	require.NoError(t, clone.SetPruned(0, true))
	_, err := clone.AddArc(2, 3, []string{"c"}, -1)
	require.NoError(t, err)

	p, _ := g.Pruned(0)
	assert.False(t, p)
	assert.Equal(t, 2, g.NumArcs())
	assert.InDelta(t, -0.25, clone.InitialStateScore(), 1e-12)
	assert.Equal(t, g.FinalStates(), clone.FinalStates())
}

func TestClear(t *testing.T) {
	g := buildChain(t)
	g.Clear()
	assert.True(t, g.Empty())
	assert.Empty(t, g.FinalStates())
	assert.Equal(t, 0, g.NumStates())
}

func TestClampScore(t *testing.T) {
	assert.InDelta(t, core.SmallScore, core.ClampScore(core.SmallScore*2), 1e-6)
	assert.InDelta(t, -3.0, core.ClampScore(-3), 1e-12)
}
