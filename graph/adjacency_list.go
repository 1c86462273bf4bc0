package graph

import (
	"fmt"
	"iter"
	"slices"
)

// AdjacencyListGraph stores one neighbour list per node.
//
// Undirected graphs store every edge in both lists, so
// v ∈ N(u) ⇔ u ∈ N(v) always holds. Parallel edges are kept as repeated
// entries; the Euler stage relies on that for doubled edges.
type AdjacencyListGraph struct {
	adj   [][]int
	dir   Directionality
	edges int
}

// NewAdjacencyListGraph returns an edgeless graph on n nodes.
func NewAdjacencyListGraph(n int, dir Directionality) *AdjacencyListGraph {
	if n < 0 {
		n = 0
	}
	return &AdjacencyListGraph{adj: make([][]int, n), dir: dir}
}

// NewAdjacencyListGraphFrom builds a graph from ready-made neighbour lists.
// The lists are copied. For undirected graphs the caller must supply
// symmetric lists; the result is checked and ErrEdgeNotFound is returned
// if some entry has no mirror.
//
// Complexity: O(V + E) for directed input, O(V + E·Δ) for the symmetry check.
func NewAdjacencyListGraphFrom(adj [][]int, dir Directionality) (*AdjacencyListGraph, error) {
	n := len(adj)
	g := &AdjacencyListGraph{adj: make([][]int, n), dir: dir}

	var entries int
	for u := range adj {
		for _, v := range adj[u] {
			if err := checkNode(v, n); err != nil {
				return nil, fmt.Errorf("neighbour %d of %d: %w", v, u, err)
			}
		}
		g.adj[u] = slices.Clone(adj[u])
		entries += len(adj[u])
	}

	if dir == Directed {
		g.edges = entries
		return g, nil
	}

	// Undirected: every entry must be mirrored with the same multiplicity.
	for u := range g.adj {
		for _, v := range g.adj[u] {
			if count(g.adj[u], v) != count(g.adj[v], u) {
				return nil, fmt.Errorf("entry %d→%d has no mirror: %w", u, v, ErrEdgeNotFound)
			}
		}
	}
	g.edges = entries / 2

	return g, nil
}

// NumberOfNodes returns n.
func (g *AdjacencyListGraph) NumberOfNodes() int { return len(g.adj) }

// NumberOfEdges returns the number of edges, counting parallel edges
// separately and undirected edges once.
func (g *AdjacencyListGraph) NumberOfEdges() int { return g.edges }

// Directionality reports how edges are stored.
func (g *AdjacencyListGraph) Directionality() Directionality { return g.dir }

// Adjacent reports whether v appears in the neighbour list of u.
func (g *AdjacencyListGraph) Adjacent(u, v int) bool {
	if checkNode(u, len(g.adj)) != nil {
		return false
	}
	return slices.Contains(g.adj[u], v)
}

// Degree returns the length of u's neighbour list (out-degree when directed).
func (g *AdjacencyListGraph) Degree(u int) int { return len(g.adj[u]) }

// Neighbours yields u's neighbours in insertion order.
func (g *AdjacencyListGraph) Neighbours(u int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range g.adj[u] {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges yields (u, v) for u = 0..n-1 and v in insertion order.
func (g *AdjacencyListGraph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for u := range g.adj {
			for _, v := range g.adj[u] {
				if !yield(Edge{U: u, V: v}) {
					return
				}
			}
		}
	}
}

// AdjacencyList returns a deep copy of the neighbour lists.
func (g *AdjacencyListGraph) AdjacencyList() [][]int {
	out := make([][]int, len(g.adj))
	for u := range g.adj {
		out[u] = append(make([]int, 0, len(g.adj[u])), g.adj[u]...)
	}
	return out
}

// AddEdge appends (u, v); undirected graphs also append (v, u).
func (g *AdjacencyListGraph) AddEdge(u, v int) error {
	n := len(g.adj)
	if err := checkNode(u, n); err != nil {
		return fmt.Errorf("add edge %d-%d: %w", u, v, err)
	}
	if err := checkNode(v, n); err != nil {
		return fmt.Errorf("add edge %d-%d: %w", u, v, err)
	}

	g.adj[u] = append(g.adj[u], v)
	if g.dir == Undirected {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges++

	return nil
}

// RemoveEdge deletes one occurrence of (u, v), and of (v, u) when undirected.
// The relative order of the remaining neighbours is preserved.
func (g *AdjacencyListGraph) RemoveEdge(u, v int) error {
	n := len(g.adj)
	if checkNode(u, n) != nil || checkNode(v, n) != nil {
		return fmt.Errorf("remove edge %d-%d: %w", u, v, ErrNodeOutOfRange)
	}

	i := slices.Index(g.adj[u], v)
	if i < 0 {
		return fmt.Errorf("remove edge %d-%d: %w", u, v, ErrEdgeNotFound)
	}
	g.adj[u] = slices.Delete(g.adj[u], i, i+1)

	if g.dir == Undirected {
		j := slices.Index(g.adj[v], u)
		if j < 0 {
			// Symmetry is an invariant of undirected storage.
			panic(fmt.Sprintf("graph: asymmetric adjacency for edge %d-%d", u, v))
		}
		g.adj[v] = slices.Delete(g.adj[v], j, j+1)
	}
	g.edges--

	return nil
}

// Connected reports whether every node is reachable from node 0 when
// arcs are read in both directions.
func (g *AdjacencyListGraph) Connected() bool {
	if g.dir == Directed {
		return g.Undirected().Connected()
	}
	return reachesAll(g)
}

// Undirected returns a copy with every arc also stored reversed.
// On an undirected graph it is equivalent to Clone.
func (g *AdjacencyListGraph) Undirected() *AdjacencyListGraph {
	if g.dir == Undirected {
		return g.Clone()
	}

	out := NewAdjacencyListGraph(len(g.adj), Undirected)
	for e := range g.Edges() {
		out.adj[e.U] = append(out.adj[e.U], e.V)
		out.adj[e.V] = append(out.adj[e.V], e.U)
		out.edges++
	}

	return out
}

// Clone returns an independent deep copy.
func (g *AdjacencyListGraph) Clone() *AdjacencyListGraph {
	return &AdjacencyListGraph{adj: g.AdjacencyList(), dir: g.dir, edges: g.edges}
}

// count returns the multiplicity of x in s.
func count(s []int, x int) int {
	var c int
	for _, y := range s {
		if y == x {
			c++
		}
	}
	return c
}
