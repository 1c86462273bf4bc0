package btsp_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/btsp/btsp"
	"github.com/katalvlaran/btsp/graph"
)

// ExampleApproximateBTSP tours five points on a line. Any cycle has to
// come back from the far end, so the bound of 2 is met exactly.
func ExampleApproximateBTSP() {
	pts := []orb.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}

	res, err := btsp.ApproximateBTSP(graph.NewEuclidean(pts))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tour:", res.Tour)
	fmt.Printf("objective %.1f, lower bound %.1f\n", res.Objective, res.LowerBound)
	// Output:
	// tour: [0 1 3 4 2]
	// objective 2.0, lower bound 2.0
}

// ExampleApproximateBTSPP connects opposite corners of a unit square.
func ExampleApproximateBTSPP() {
	pts := []orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	res, err := btsp.ApproximateBTSPP(graph.NewEuclidean(pts), 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Tour)
	fmt.Printf("bottleneck %v weighs %.4f\n", res.BottleneckEdge, res.Objective)
	// Output:
	// path: [0 3 1 2]
	// bottleneck (3, 1) weighs 1.4142
}
