package propagate_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/propagate"
)

// ExampleForward computes prevScores and restScores of a two-arc chain.
func ExampleForward() {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"a"}, -1.0)
	_, _ = g.AddArc(1, 2, []string{"b"}, -0.5)
	_ = g.AddFinalState(2)

	fwd, _ := propagate.Forward(g)
	rest, _ := propagate.Backward(g)
	fmt.Println(fwd.Scores)
	fmt.Println(rest)
	// Output:
	// [0 -1 -1.5]
	// [-1.5 -0.5 0]
}
