package prune_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/prune"
)

// ExamplePrune keeps only the best of two competing arcs.
func ExamplePrune() {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"house"}, -0.2)
	_, _ = g.AddArc(0, 1, []string{"home"}, -0.9)
	_ = g.AddFinalState(1)

	n, _ := prune.Prune(g, 1)
	fmt.Println(n, g.PrunedFlags())
	// Output:
	// 1 [false true]
}
