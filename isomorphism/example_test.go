package isomorphism_test

import (
	"fmt"

	"github.com/katalvlaran/isomatch/isomorphism"
)

// ExampleNewSearch lists every embedding of a single edge into the path
// 0-1-2. Mappings come out in deterministic search order.
func ExampleNewSearch() {
	edge, _ := isomorphism.NewAdjacencyGraph(2, [][2]int{{0, 1}})
	line, _ := isomorphism.NewAdjacencyGraph(3, [][2]int{{0, 1}, {1, 2}})

	e, err := isomorphism.NewSearch(edge, line)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for m := range e.All() {
		fmt.Println(m)
	}

	// Output:
	// [0 1]
	// [1 0]
	// [1 2]
	// [2 1]
}

// ExampleCount counts the automorphisms of a 4-cycle (the dihedral group D4).
func ExampleCount() {
	square, _ := isomorphism.NewAdjacencyGraph(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	n, err := isomorphism.Count(square, square, isomorphism.WithMode(isomorphism.Exact))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n)

	// Output:
	// 8
}

// ExampleWithVertexMatcher restricts a triangle search to label-compatible
// vertices: query labels C,C,O against a target with a single O.
func ExampleWithVertexMatcher() {
	tri, _ := isomorphism.NewAdjacencyGraph(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	qLabels := []string{"C", "C", "O"}
	tLabels := []string{"O", "C", "C"}

	n, _ := isomorphism.Count(tri, tri, isomorphism.WithVertexMatcher(func(q, t int) bool {
		return qLabels[q] == tLabels[t]
	}))
	fmt.Println(n)

	// Output:
	// 2
}
