package mcs_test

import (
	"fmt"

	"github.com/katalvlaran/mecenum/builder"
	"github.com/katalvlaran/mecenum/core"
	"github.com/katalvlaran/mecenum/mcs"
)

// ExampleEnumerateCPDAG counts the orientations of the undirected
// triangle: one DAG per topological order of K₃.
func ExampleEnumerateCPDAG() {
	g, _ := builder.Complete(3)

	count, _ := mcs.EnumerateCPDAG(g)
	fmt.Println(count)
	// Output:
	// 6
}

// ExampleEnumeratePDAG pins 1→2 and 3→2 as background knowledge inside
// a triangle; only the two orders placing 2 last survive.
func ExampleEnumeratePDAG() {
	g := core.NewDigraph(3)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(3, 2)
	_ = g.AddUndirectedEdge(1, 3)

	count, _ := mcs.EnumeratePDAG(g)
	fmt.Println(count)
	// Output:
	// 2
}
