package btsp

import (
	"github.com/katalvlaran/btsp/graph"
)

// FindBottleneck returns the heaviest edge of tour under the weights of e,
// oriented as it is traversed. When cycle is true the closing edge from the
// last node back to the first is included. Ties keep the earliest edge.
//
// A tour with fewer than two nodes has no edges; the zero Edge is returned.
//
// Complexity: O(len(tour)).
func FindBottleneck(e *graph.Euclidean, tour []int, cycle bool) graph.Edge {
	var (
		best     graph.Edge
		heaviest = -1.0
	)
	if len(tour) < 2 {
		return best
	}

	consider := func(u, v int) {
		if w := e.Weight(u, v); w > heaviest {
			heaviest = w
			best = graph.Edge{U: u, V: v}
		}
	}
	for i := 0; i+1 < len(tour); i++ {
		consider(tour[i], tour[i+1])
	}
	if cycle {
		consider(tour[len(tour)-1], tour[0])
	}

	return best
}
