package reach_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/reach"
)

// ExampleUsefulSubgraph drops a dead-end branch and renumbers the rest.
func ExampleUsefulSubgraph() {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"dead"}, -0.1)
	_, _ = g.AddArc(0, 2, []string{"alive"}, -0.2)
	_ = g.AddFinalState(2)

	sub, u, _ := reach.UsefulSubgraph(g)
	a, _ := sub.Arc(0)
	fmt.Println(u.Mask, sub.NumArcs(), a.Pred, a.Succ, a.Words, sub.FinalStates())
	// Output:
	// [true false true] 1 0 1 [alive] [1]
}
