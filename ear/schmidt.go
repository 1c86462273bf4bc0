package ear

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/btsp/graph"
)

// directed is implemented by graphs that know their storage direction.
type directed interface {
	Directionality() graph.Directionality
}

// Schmidt computes a chain decomposition of the undirected graph g rooted
// at node 0. See SchmidtFrom.
func Schmidt(g graph.Traversable) (Decomposition, error) {
	return SchmidtFrom(g, 0)
}

// SchmidtFrom computes a chain decomposition of the undirected graph g.
//
// Steps:
//  1. Run DFS from root; the exploration order is the DFI order.
//  2. Walk nodes v in DFI order and mark v. For every back edge v–w
//     (w explored after v and not v's tree child), start a chain [v, w] and
//     climb tree parents from w, marking nodes, until a marked node is hit.
//  3. The first chain is a cycle through the root. A later chain that ends
//     where it started reveals an articulation point at its start.
//  4. Tree edges no chain climbed are bridges; their endpoints of degree at
//     least two are articulation points.
//
// Neighbours are taken in g's iteration order, so the result is
// deterministic for a given storage. Parallel edges are supported: the
// first copy of a tree edge is the tree edge, the others are back edges.
//
// Errors: ErrTooFewNodes for n < 3, ErrDirected for a graph that reports
// directed storage, ErrDisconnected if DFS does not reach every node,
// graph.ErrNodeOutOfRange for a bad root.
//
// Complexity: O(V + E) time and memory.
func SchmidtFrom(g graph.Traversable, root int) (Decomposition, error) {
	n := g.NumberOfNodes()
	if n < 3 {
		return Decomposition{}, fmt.Errorf("schmidt on %d nodes: %w", n, ErrTooFewNodes)
	}
	if d, ok := g.(directed); ok && d.Directionality() == graph.Directed {
		return Decomposition{}, ErrDirected
	}

	tree, err := graph.DFS(g, root)
	if err != nil {
		return Decomposition{}, fmt.Errorf("schmidt: %w", err)
	}
	if !tree.Connected() {
		return Decomposition{}, ErrDisconnected
	}

	var (
		order   = tree.ExplorationOrder()
		dfi     = make([]int, n)
		marked  = make([]bool, n)
		climbed = make([]bool, n) // tree edge (parent(x), x) lies on a chain
		child   = make([]bool, n) // tree edge to a child already skipped
		d       = Decomposition{Nodes: n}
		aps     []int
	)
	for i, v := range order {
		dfi[v] = i
	}
	parent := func(x int) int { return tree.Parent(x) }

	for _, v := range order {
		marked[v] = true
		for w := range g.Neighbours(v) {
			if dfi[w] <= dfi[v] {
				continue // tree edge to the parent or back edge seen from below
			}
			if parent(w) == v && !child[w] {
				child[w] = true
				continue
			}

			// Back edge v–w: climb from w until a marked node closes the chain.
			chain := []int{v}
			x := w
			for {
				chain = append(chain, x)
				if marked[x] {
					break
				}
				marked[x] = true
				climbed[x] = true
				x = parent(x)
			}

			if len(d.Ears) > 0 && chain[0] == chain[len(chain)-1] {
				aps = append(aps, v)
			}
			d.Ears = append(d.Ears, chain)
		}
	}

	// Bridges: tree edges never climbed.
	for _, x := range order[1:] {
		if climbed[x] {
			continue
		}
		p := parent(x)
		if g.Degree(p) >= 2 {
			aps = append(aps, p)
		}
		if g.Degree(x) >= 2 {
			aps = append(aps, x)
		}
	}

	slices.Sort(aps)
	d.ArticulationPoints = slices.Compact(aps)
	if d.ArticulationPoints == nil {
		d.ArticulationPoints = []int{}
	}

	return d, nil
}
