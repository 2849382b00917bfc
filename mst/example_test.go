package mst_test

import (
	"fmt"

	"github.com/katalvlaran/wsnsim/core"
	"github.com/katalvlaran/wsnsim/mst"
)

// ExampleBuild threads three cluster heads onto a sink at the origin and
// prints each head's next hop toward the sink.
func ExampleBuild() {
	points := []core.Point{
		{X: 0, Y: 0},   // sink (root)
		{X: 10, Y: 0},  // head A
		{X: 20, Y: 0},  // head B
		{X: 10, Y: 10}, // head C
	}

	tree, _ := mst.Build(points, 0)

	for v := 1; v < tree.Len(); v++ {
		fmt.Printf("vertex %d relays via %d\n", v, tree.Parent[v])
	}
	fmt.Printf("total wire length: %.0f\n", tree.Weight)

	// Output:
	// vertex 1 relays via 0
	// vertex 2 relays via 1
	// vertex 3 relays via 1
	// total wire length: 30
}
