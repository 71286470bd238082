package core_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
)

// ExampleGraph_SetComponentWeights rescores a one-arc graph from its
// language-model and translation-model components.
func ExampleGraph_SetComponentWeights() {
	g := core.NewGraph()
	id, _ := g.AddArcWithComponents(0, 1, []string{"casa"}, 0, []float64{-2, -4})
	_ = g.AddFinalState(1)

	n := g.SetComponentWeights(core.Weights{{Name: "lm", Value: 1}, {Name: "tm", Value: 0.5}})
	a, _ := g.Arc(id)
	fmt.Println(n, a.Score)
	// Output:
	// 1 -4
}

// ExampleGraph_StateRange shows that ranges are only defined on non-empty graphs.
func ExampleGraph_StateRange() {
	g := core.NewGraph()
	if _, _, err := g.StateRange(); err != nil {
		fmt.Println(err)
	}
	_, _ = g.AddArc(0, 1, []string{"a"}, -1)
	first, last, _ := g.StateRange()
	fmt.Println(first, last)
	// Output:
	// core: graph has no arcs
	// 0 1
}
