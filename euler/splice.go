package euler

import (
	"slices"

	"github.com/katalvlaran/btsp/graph"
)

// visit is one entry of a long tour. A spliced visit marks the return to
// the node a component tour was hung on; it is dropped once splicing ends.
type visit struct {
	node    int
	spliced bool
}

// InsertNodeCuts splices the cut nodes back into an Euler tour of G-.
//
// The tour is walked backwards; for each pair (w, v) = (tour[i-1], tour[i])
// the out-neighbours u of v are scanned in arc order, and the first pending
// cut u with an arc w→u as well is inserted between w and v. cuts is
// drained; a node left over panics with ErrInvariant. HamiltonCycle does
// not call it: longTour runs the same insertion and reports leftovers.
func InsertNodeCuts(tour []int, cuts NodeSet, digraph *graph.AdjacencyListGraph) []int {
	visits := make([]visit, len(tour))
	for i, v := range tour {
		visits[i] = visit{node: v}
	}
	visits, _ = insertCuts(visits, cuts, digraph)
	if len(cuts) > 0 {
		invariant("node cuts %v could not be reinserted", cuts.Sorted())
	}
	return nodes(visits)
}

// insertCuts runs one backward insertion pass and reports how many cuts it
// placed. Cuts that find no slot stay in cuts.
func insertCuts(tour []visit, cuts NodeSet, digraph *graph.AdjacencyListGraph) ([]visit, int) {
	out := slices.Grow(tour, len(cuts))

	var placed int
	for i := len(out) - 1; i > 0; i-- {
		v, w := out[i].node, out[i-1].node
		for u := range digraph.Neighbours(v) {
			if cuts.Contains(u) && digraph.Adjacent(w, u) {
				out = slices.Insert(out, i, visit{node: u})
				delete(cuts, u)
				placed++
				break
			}
		}
	}
	return out, placed
}

// components labels the connected components of the multigraph adj.
// Nodes without edges get -1. It returns the labels and their count.
func components(adj [][]int) ([]int, int) {
	comp := make([]int, len(adj))
	for i := range comp {
		comp[i] = -1
	}

	var c int
	stack := make([]int, 0, len(adj))
	for s := range adj {
		if comp[s] >= 0 || len(adj[s]) == 0 {
			continue
		}
		comp[s] = c
		stack = append(stack[:0], s)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range adj[u] {
				if comp[w] < 0 {
					comp[w] = c
					stack = append(stack, w)
				}
			}
		}
		c++
	}
	return comp, c
}

// longTour builds the closed walk over G- with every node cut reinserted.
//
// Contracting cuts can split G- into several components. The component of
// TourStart(adj) is toured first. Then, until nothing changes, cuts are
// inserted and every unspliced visit of a node whose component is still
// missing gets that component's Euler tour hung after it. The return to
// the hanging node is not repeated in the result.
//
// It reports false when a cut or a component cannot be reached.
func longTour(adj [][]int, cuts NodeSet, digraph *graph.AdjacencyListGraph) ([]int, bool) {
	start := TourStart(adj)
	if start < 0 {
		return nil, false
	}
	comp, count := components(adj)
	merged := make([]bool, count)
	merged[comp[start]] = true
	remaining := count - 1

	base := EulerTour(adj, start)
	tour := make([]visit, len(base))
	for i, v := range base {
		tour[i] = visit{node: v}
	}

	for {
		var placed int
		tour, placed = insertCuts(tour, cuts, digraph)

		spliced := false
		for j := 0; j < len(tour) && remaining > 0; j++ {
			u := tour[j]
			if u.spliced || comp[u.node] < 0 || merged[comp[u.node]] {
				continue
			}
			merged[comp[u.node]] = true
			remaining--

			sub := EulerTour(adj, u.node)
			seg := make([]visit, 0, len(sub)-1)
			for _, x := range sub[1 : len(sub)-1] {
				seg = append(seg, visit{node: x})
			}
			seg = append(seg, visit{node: u.node, spliced: true})
			tour = slices.Insert(tour, j+1, seg...)
			j += len(seg)
			spliced = true
		}

		if placed == 0 && !spliced {
			break
		}
	}

	if len(cuts) > 0 || remaining > 0 {
		return nil, false
	}
	return nodes(tour), true
}

// nodes drops spliced visits and returns the node sequence.
func nodes(tour []visit) []int {
	out := make([]int, 0, len(tour))
	for _, v := range tour {
		if !v.spliced {
			out = append(out, v.node)
		}
	}
	return out
}
