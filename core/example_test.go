package core_test

import (
	"fmt"

	"github.com/katalvlaran/isomatch/core"
)

// ExampleGraph builds a labeled fragment (a carbonyl group on a carbon chain)
// and inspects it.
func ExampleGraph() {
	g := core.NewGraph()

	_ = g.AddLabeledVertex("c1", "C")
	_ = g.AddLabeledVertex("c2", "C")
	_ = g.AddLabeledVertex("o1", "O")
	_, _ = g.AddEdge("c1", "c2", core.WithEdgeLabel("single"))
	_, _ = g.AddEdge("c2", "o1", core.WithEdgeLabel("double"))

	for _, e := range g.Edges() {
		from, _ := g.Vertex(e.From)
		to, _ := g.Vertex(e.To)
		fmt.Printf("%s %s-%s %s\n", e.ID, from.Label, to.Label, e.Label)
	}
	nbs, _ := g.NeighborIDs("c2")
	fmt.Println("c2 neighbors:", nbs)

	// Output:
	// e1 C-C single
	// e2 C-O double
	// c2 neighbors: [c1 o1]
}
