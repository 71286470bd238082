package topo_test

import (
	"fmt"

	"github.com/katalvlaran/wordgraph/core"
	"github.com/katalvlaran/wordgraph/topo"
)

// ExampleOrderArcs repairs a graph whose arcs were stored back to front.
func ExampleOrderArcs() {
	g := core.NewGraph()
	_, _ = g.AddArc(0, 1, []string{"the"}, -0.1)
	_, _ = g.AddArc(1, 2, []string{"house"}, -0.4)
	_ = g.ReorderArcs([]core.ArcID{1, 0})

	fmt.Println(topo.IsOrdered(g))
	_ = topo.OrderArcs(g)
	fmt.Println(topo.IsOrdered(g))
	a, _ := g.Arc(0)
	fmt.Println(a.Words)
	// Output:
	// false
	// true
	// [the]
}
