package btsp

import (
	"math"

	"github.com/katalvlaran/btsp/ear"
	"github.com/katalvlaran/btsp/graph"
)

// Result is the outcome of one solve. It is not modified after the solver
// returns it; renderers and caches only read it.
type Result struct {
	// BiconnectedGraph is the augmented spanning graph the tour was built
	// from. For the path variant it contains the virtual s–t edge.
	BiconnectedGraph *graph.AdjacencyMatrixGraph

	// EarDecomposition is the open decomposition fed to the Euler stage.
	// For the path variant it covers the five-fold graph.
	EarDecomposition ear.Decomposition

	// Tour lists node indices: a cycle without the repeated first node, or
	// a path from s to t.
	Tour []int

	// Objective is the weight of BottleneckEdge.
	Objective float64

	// BottleneckEdge is the heaviest edge of Tour (including the closing
	// edge of a cycle).
	BottleneckEdge graph.Edge

	// LowerBound is a lower bound on the optimal bottleneck value.
	LowerBound float64
}

// Ratio returns Objective / LowerBound, the a fortiori guarantee of the
// solve. A zero bound yields 1 for a zero objective and +Inf otherwise.
func (r Result) Ratio() float64 {
	if r.LowerBound == 0 {
		if r.Objective == 0 {
			return 1
		}
		return math.Inf(1)
	}
	return r.Objective / r.LowerBound
}
