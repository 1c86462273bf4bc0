package euler

import "slices"

// EulerTour returns an Eulerian circuit (or trail) of the undirected
// multigraph given by adjacency lists adj, starting at start.
// It implements Hierholzer's algorithm in O(E); adj is not modified.
//
// Edges are taken from the back of each list. The circuit is emitted in
// backtracking order, which for a circuit still begins and ends at start.
func EulerTour(adj [][]int, start int) []int {
	local := make([][]int, len(adj))
	for u := range adj {
		local[u] = slices.Clone(adj[u])
	}

	var (
		circuit []int
		stack   = []int{start}
	)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(local[u]) == 0 {
			// Dead end: emit and backtrack.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}

		v := local[u][len(local[u])-1]
		local[u] = local[u][:len(local[u])-1]
		// Consume the reverse copy v→u.
		if i := slices.Index(local[v], u); i >= 0 {
			local[v] = slices.Delete(local[v], i, i+1)
		}
		stack = append(stack, v)
	}

	return circuit
}

// TourStart picks the node to start an Euler tour from: the first node of
// odd degree if there is one, otherwise the first node with any edge.
// It returns -1 for an edgeless graph.
func TourStart(adj [][]int) int {
	first := -1
	for u := range adj {
		if len(adj[u])%2 == 1 {
			return u
		}
		if first < 0 && len(adj[u]) > 0 {
			first = u
		}
	}
	return first
}
