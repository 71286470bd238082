package nbest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgraph/nbest"
)

func TestStack_DescendingWithFIFOTies(t *testing.T) {
	s := nbest.NewStack[string](0)
	s.Push(-2, "b")
	s.Push(-1, "a1")
	s.Push(-3, "c")
	s.Push(-1, "a2")

	var got []string
	for !s.Empty() {
		_, v, ok := s.Pop()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []string{"a1", "a2", "b", "c"}, got)

	_, _, ok := s.Pop()
	assert.False(t, ok)
}

func TestStack_EvictsLowest(t *testing.T) {
	s := nbest.NewStack[int](2)
	assert.True(t, s.Push(-1, 1))
	assert.True(t, s.Push(-3, 3))
	assert.False(t, s.Push(-5, 5), "lower than everything in a full stack")
	assert.True(t, s.Push(-2, 2))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Evicted())

	_, v, _ := s.Pop()
	assert.Equal(t, 1, v)
	_, v, _ = s.Pop()
	assert.Equal(t, 2, v)
}

func TestStack_EqualPriorityOnFullStack(t *testing.T) {
	s := nbest.NewStack[string](1)
	s.Push(-1, "first")
	assert.False(t, s.Push(-1, "second"))

	p, v, ok := s.Top()
	require.True(t, ok)
	assert.Equal(t, "first", v)
	assert.InDelta(t, -1.0, p, 1e-12)
}

func TestStack_PushAfterPop(t *testing.T) {
	s := nbest.NewStack[int](3)
	for i := 0; i < 3; i++ {
		s.Push(float64(-i), i)
	}
	_, _, _ = s.Pop()
	_, _, _ = s.Pop()
	s.Push(-0.5, 9)
	s.Push(-4, 4)

	var got []int
	for !s.Empty() {
		_, v, _ := s.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{9, 2, 4}, got)
	assert.Equal(t, 3, s.Capacity())
}
