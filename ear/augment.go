package ear

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/btsp/graph"
)

// weightedEdge is a candidate edge of the Euclidean graph.
type weightedEdge struct {
	u, v int
	w    float64
}

// sortedEdges returns every pair u < v sorted by (weight, u, v),
// leaving out skip.
func sortedEdges(e *graph.Euclidean, skip graph.Edge) []weightedEdge {
	n := e.NumberOfNodes()
	out := make([]weightedEdge, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if (graph.Edge{U: u, V: v}) == skip {
				continue
			}
			out = append(out, weightedEdge{u: u, v: v, w: e.Weight(u, v)})
		}
	}
	slices.SortFunc(out, func(a, b weightedEdge) int {
		return cmp.Or(cmp.Compare(a.w, b.w), cmp.Compare(a.u, b.u), cmp.Compare(a.v, b.v))
	})
	return out
}

// connectivityThreshold returns the length of the shortest prefix of edges
// that connects all n nodes, found with a union-find pass (Kruskal).
func connectivityThreshold(n int, edges []weightedEdge, extra []weightedEdge) int {
	sets := make([]*disjoint.Element, n)
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	components := n
	join := func(u, v int) {
		if sets[u].Find() != sets[v].Find() {
			disjoint.Union(sets[u], sets[v])
			components--
		}
	}
	for _, ed := range extra {
		join(ed.u, ed.v)
	}
	if components == 1 {
		return 0
	}
	for i, ed := range edges {
		join(ed.u, ed.v)
		if components == 1 {
			return i + 1
		}
	}
	return len(edges)
}

// buildPrefix materializes extra plus the first k sorted edges.
func buildPrefix(n int, edges []weightedEdge, k int, extra []weightedEdge) *graph.AdjacencyMatrixGraph {
	triplets := make([]graph.Triplet, 0, k+len(extra))
	for _, ed := range extra {
		triplets = append(triplets, graph.Triplet{Row: ed.u, Col: ed.v, Weight: ed.w})
	}
	for _, ed := range edges[:k] {
		triplets = append(triplets, graph.Triplet{Row: ed.u, Col: ed.v, Weight: ed.w})
	}
	g, err := graph.NewAdjacencyMatrixGraphFromTriplets(n, graph.Undirected, triplets)
	if err != nil {
		// Indices and weights come from the Euclidean graph itself.
		panic(err)
	}
	return g
}

// augment finds the shortest biconnected prefix of the sorted edges, with
// extra always present. Biconnectivity is monotone in the prefix length, so
// a binary search between the connectivity threshold and the full edge set
// finds it.
func augment(n int, edges []weightedEdge, extra []weightedEdge) (*graph.AdjacencyMatrixGraph, int) {
	lo, hi := connectivityThreshold(n, edges, extra), len(edges)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if buildPrefix(n, edges, mid, extra).Biconnected() {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return buildPrefix(n, edges, lo, extra), lo
}

// BiconnectedSpanningGraph adds the edges of e in ascending weight order
// (ties broken by node indices) until the graph is biconnected.
//
// It returns the graph and the largest weight it contains. Every
// Hamiltonian cycle is biconnected, so that weight is a lower bound on the
// optimal bottleneck value.
//
// Errors: ErrTooFewNodes for fewer than three points.
func BiconnectedSpanningGraph(e *graph.Euclidean) (*graph.AdjacencyMatrixGraph, float64, error) {
	n := e.NumberOfNodes()
	if n < 3 {
		return nil, 0, fmt.Errorf("biconnected spanning graph on %d nodes: %w", n, ErrTooFewNodes)
	}

	edges := sortedEdges(e, graph.Edge{U: -1, V: -1})
	g, k := augment(n, edges, nil)

	return g, edges[k-1].w, nil
}

// EdgeAugmentedBiconnectedSpanningGraph is BiconnectedSpanningGraph with
// the virtual edge st present from the start.
//
// The returned graph contains st. The returned bound is the largest weight
// among the other edges: a Hamiltonian s–t path plus st is a Hamiltonian
// cycle, so the bound holds for the path problem.
//
// Errors: ErrTooFewNodes for fewer than three points, ErrEdgeOutOfRange if
// st has an invalid or repeated endpoint.
func EdgeAugmentedBiconnectedSpanningGraph(e *graph.Euclidean, st graph.Edge) (*graph.AdjacencyMatrixGraph, float64, error) {
	n := e.NumberOfNodes()
	if n < 3 {
		return nil, 0, fmt.Errorf("edge augmented spanning graph on %d nodes: %w", n, ErrTooFewNodes)
	}
	if st.U < 0 || st.U >= n || st.V < 0 || st.V >= n || st.U == st.V {
		return nil, 0, fmt.Errorf("virtual edge %v: %w", st, ErrEdgeOutOfRange)
	}

	st = st.Normalize()
	edges := sortedEdges(e, st)
	extra := []weightedEdge{{u: st.U, v: st.V, w: e.Weight(st.U, st.V)}}
	g, k := augment(n, edges, extra)

	var bound float64
	if k > 0 {
		bound = edges[k-1].w
	}
	return g, bound, nil
}
