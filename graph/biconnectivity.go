package graph

import (
	"slices"
)

// Connected reports whether a DFS from node 0 reaches every node of g.
// g is read as stored; directed graphs should be symmetrized first
// (see the Undirected methods).
func Connected(g Traversable) bool { return reachesAll(g) }

// ConnectedWithout reports whether g stays connected after node v and its
// incident edges are deleted. Graphs with at most one other node are
// trivially connected.
//
// Complexity: O(V + E).
func ConnectedWithout(g Traversable, v int) bool {
	n := g.NumberOfNodes()
	if n <= 2 {
		return true
	}
	start := 0
	if v == 0 {
		start = 1
	}

	var (
		visited = make([]bool, n)
		stack   = []int{start}
		reached int
		top     int
	)
	visited[v] = true
	visited[start] = true
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		for nb := range g.Neighbours(top) {
			if !visited[nb] {
				visited[nb] = true
				stack = append(stack, nb)
			}
		}
	}

	return reached == n-1
}

// Biconnected reports whether g has at least two nodes, is connected and
// has no articulation point. g must store undirected edges symmetrically.
func Biconnected(g Traversable) bool {
	if g.NumberOfNodes() < 2 || !reachesAll(g) {
		return false
	}
	return len(ArticulationPoints(g)) == 0
}

// apFrame is one level of the explicit Tarjan recursion stack.
type apFrame struct {
	v        int
	parent   int
	nbrs     []int
	next     int
	children int
	// skipped marks that one copy of the tree edge back to parent was
	// ignored; further copies are genuine parallel edges.
	skipped bool
}

// ArticulationPoints returns the cut vertices of g in ascending order,
// using Tarjan's low-point method with an explicit stack. Every component
// is searched. Parallel edges are honoured: a doubled tree edge is not a
// bridge.
//
// Complexity: O(V + E) time and memory.
func ArticulationPoints(g Traversable) []int {
	n := g.NumberOfNodes()

	var (
		disc  = make([]int, n) // discovery time, 0 = unvisited
		low   = make([]int, n)
		isAP  = make([]bool, n)
		clock int
	)

	for s := 0; s < n; s++ {
		if disc[s] != 0 {
			continue
		}
		clock++
		disc[s], low[s] = clock, clock
		stack := []apFrame{{v: s, parent: -1, nbrs: slices.Collect(g.Neighbours(s))}}

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			// Advance to the next neighbour of the frame's node.
			if f.next < len(f.nbrs) {
				w := f.nbrs[f.next]
				f.next++
				if w == f.parent && !f.skipped {
					f.skipped = true
					continue
				}
				if disc[w] == 0 {
					clock++
					disc[w], low[w] = clock, clock
					f.children++
					stack = append(stack, apFrame{v: w, parent: f.v, nbrs: slices.Collect(g.Neighbours(w))})
				} else {
					low[f.v] = min(low[f.v], disc[w])
				}
				continue
			}

			// All neighbours done: propagate the low-point to the parent.
			v, p, children := f.v, f.parent, f.children
			stack = stack[:len(stack)-1]
			if p < 0 {
				if children > 1 {
					isAP[v] = true
				}
				continue
			}
			low[p] = min(low[p], low[v])
			if stack[len(stack)-1].parent >= 0 && low[v] >= disc[p] {
				isAP[p] = true
			}
		}
	}

	out := make([]int, 0)
	for v, ap := range isAP {
		if ap {
			out = append(out, v)
		}
	}
	return out
}
