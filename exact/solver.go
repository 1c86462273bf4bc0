package exact

import (
	"fmt"

	"github.com/katalvlaran/btsp/btsp"
	"github.com/katalvlaran/btsp/graph"
)

// Solver is the exact counterpart of btsp.Approximation. Results carry
// the optimum as both Objective and LowerBound and leave
// BiconnectedGraph and EarDecomposition empty.
type Solver struct{}

// SolveCycle returns an optimal bottleneck cycle.
//
// Errors: btsp.ErrTooFewPoints below three points, ErrTooLarge above
// MaxNodes.
func (Solver) SolveCycle(e *graph.Euclidean) (btsp.Result, error) {
	n := e.NumberOfNodes()
	if n < 3 {
		return btsp.Result{}, fmt.Errorf("cycle through %d points: %w", n, btsp.ErrTooFewPoints)
	}
	if n > MaxNodes {
		return btsp.Result{}, fmt.Errorf("%d points: %w", n, ErrTooLarge)
	}

	tour, opt := BottleneckCycle(e)
	return result(e, tour, opt, true), nil
}

// SolvePath returns an optimal bottleneck path from s to t.
//
// Errors: btsp.ErrTooFewPoints, btsp.ErrEndpointOutOfRange,
// btsp.ErrSameEndpoints, ErrTooLarge.
func (Solver) SolvePath(e *graph.Euclidean, s, t int) (btsp.Result, error) {
	n := e.NumberOfNodes()
	switch {
	case n < 2:
		return btsp.Result{}, fmt.Errorf("path through %d points: %w", n, btsp.ErrTooFewPoints)
	case s < 0 || s >= n || t < 0 || t >= n:
		return btsp.Result{}, fmt.Errorf("endpoints %d, %d: %w", s, t, btsp.ErrEndpointOutOfRange)
	case s == t:
		return btsp.Result{}, fmt.Errorf("endpoints %d, %d: %w", s, t, btsp.ErrSameEndpoints)
	case n > MaxNodes:
		return btsp.Result{}, fmt.Errorf("%d points: %w", n, ErrTooLarge)
	}

	tour, opt := BottleneckPath(e, s, t)
	return result(e, tour, opt, false), nil
}

func result(e *graph.Euclidean, tour []int, opt float64, cycle bool) btsp.Result {
	return btsp.Result{
		Tour:           tour,
		Objective:      opt,
		BottleneckEdge: btsp.FindBottleneck(e, tour, cycle),
		LowerBound:     opt,
	}
}

var _ btsp.Solver = Solver{}
