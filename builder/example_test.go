package builder_test

import (
	"fmt"

	"github.com/varcut/varcut/builder"
)

// ExampleCompleteGraph builds K4 and prints its size.
func ExampleCompleteGraph() {
	g, err := builder.CompleteGraph(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("nodes=%d edges=%d\n", g.NodeCount(), g.EdgeCount())
	// Output:
	// nodes=4 edges=6
}

// ExampleRandomRegularGraph builds a seeded 3-regular graph on 6 nodes.
func ExampleRandomRegularGraph() {
	g, err := builder.RandomRegularGraph(6, 3, builder.WithSeed(7))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("edges=%d degree0=%d\n", g.EdgeCount(), g.Degree(0))
	// Output:
	// edges=9 degree0=3
}
