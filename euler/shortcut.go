package euler

import (
	"github.com/katalvlaran/btsp/graph"
)

// Shortcut turns the long Euler tour into a Hamiltonian cycle.
//
// The first node is kept. For i = 1..len-2 with u, w, v = tour[i-1],
// tour[i], tour[i+1]: if arcs w→u and w→v exist and u != v, the visit of w
// is skipped, v is emitted, both arcs are consumed and v is not examined
// again; otherwise w is emitted. The closing node of the tour is never
// emitted on its own. digraph is modified.
func Shortcut(long []int, digraph *graph.AdjacencyListGraph) []int {
	cycle := make([]int, 0, digraph.NumberOfNodes()+1)
	if len(long) == 0 {
		return cycle
	}
	cycle = append(cycle, long[0])

	var u, w, v int
	for i := 1; i+1 < len(long); i++ {
		u, w, v = long[i-1], long[i], long[i+1]
		if u != v && digraph.Adjacent(w, u) && digraph.Adjacent(w, v) {
			cycle = append(cycle, v)
			// Consume the arcs so the same skip cannot recur.
			if err := digraph.RemoveEdge(w, u); err != nil {
				invariant("shortcut at %d: %v", w, err)
			}
			if err := digraph.RemoveEdge(w, v); err != nil {
				invariant("shortcut at %d: %v", w, err)
			}
			i++
			continue
		}
		cycle = append(cycle, w)
	}

	return cycle
}
