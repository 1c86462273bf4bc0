package euler

import (
	"github.com/katalvlaran/btsp/graph"
)

// ReduceToGminus contracts the node cuts of g in place and returns them.
//
// A node u is cut when exactly two arcs of digraph enter it, say from v and
// w (read in arc insertion order). The undirected edges u–v and u–w are
// replaced by a single edge v–w; u keeps any further edges it has.
// Nodes are examined in ascending order.
//
// Complexity: O(V + E·Δ) because of list removals.
func ReduceToGminus(digraph, g *graph.AdjacencyListGraph) NodeSet {
	n := digraph.NumberOfNodes()
	in := make([][]int, n)
	for e := range digraph.Edges() {
		in[e.V] = append(in[e.V], e.U)
	}

	cuts := make(NodeSet)
	for u := 0; u < n; u++ {
		if len(in[u]) != 2 {
			continue
		}
		v, w := in[u][0], in[u][1]
		if err := g.RemoveEdge(u, v); err != nil {
			invariant("cut %d: %v", u, err)
		}
		if err := g.RemoveEdge(u, w); err != nil {
			invariant("cut %d: %v", u, err)
		}
		if err := g.AddEdge(v, w); err != nil {
			invariant("cut %d: %v", u, err)
		}
		cuts[u] = struct{}{}
	}

	return cuts
}
