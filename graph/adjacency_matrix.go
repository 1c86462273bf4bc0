package graph

import (
	"cmp"
	"fmt"
	"iter"
	"math"
	"slices"
)

// Triplet is one (row, column, weight) entry for bulk construction.
type Triplet struct {
	Row, Col int
	Weight   float64
}

// entry is a stored matrix element. Presence is the entry itself, so a
// zero weight is a legal edge.
type entry struct {
	col int
	w   EdgeWeight
}

// AdjacencyMatrixGraph is a sparse row-major weighted adjacency matrix.
//
// Each row is kept sorted by column, which gives CSR iteration order and
// O(log Δ) lookups. Undirected graphs store both (u, v) and (v, u).
type AdjacencyMatrixGraph struct {
	rows    [][]entry
	dir     Directionality
	entries int
}

// NewAdjacencyMatrixGraph returns an edgeless n×n matrix graph.
func NewAdjacencyMatrixGraph(n int, dir Directionality) *AdjacencyMatrixGraph {
	if n < 0 {
		n = 0
	}
	return &AdjacencyMatrixGraph{rows: make([][]entry, n), dir: dir}
}

// NewAdjacencyMatrixGraphFromTriplets builds a graph from triplets.
// Duplicate positions are combined with EdgeWeight.Add (the minimum).
// For undirected graphs every triplet is mirrored.
func NewAdjacencyMatrixGraphFromTriplets(n int, dir Directionality, triplets []Triplet) (*AdjacencyMatrixGraph, error) {
	g := NewAdjacencyMatrixGraph(n, dir)
	for _, t := range triplets {
		if err := g.validate(t.Row, t.Col, t.Weight); err != nil {
			return nil, err
		}
		g.merge(t.Row, t.Col, EdgeWeight(t.Weight))
		if dir == Undirected && t.Row != t.Col {
			g.merge(t.Col, t.Row, EdgeWeight(t.Weight))
		}
	}
	return g, nil
}

// NewAdjacencyMatrixGraphFromList converts a list graph into matrix storage
// with unit weights. Parallel edges collapse into one entry.
func NewAdjacencyMatrixGraphFromList(l *AdjacencyListGraph) *AdjacencyMatrixGraph {
	g := NewAdjacencyMatrixGraph(l.NumberOfNodes(), l.Directionality())
	for e := range l.Edges() {
		g.merge(e.U, e.V, 1)
	}
	return g
}

// NumberOfNodes returns n.
func (g *AdjacencyMatrixGraph) NumberOfNodes() int { return len(g.rows) }

// NumberOfEdges returns the number of edges; an undirected edge counts once.
func (g *AdjacencyMatrixGraph) NumberOfEdges() int {
	if g.dir == Undirected {
		return (g.entries + g.loops()) / 2
	}
	return g.entries
}

// NonZeros returns the number of stored matrix entries.
func (g *AdjacencyMatrixGraph) NonZeros() int { return g.entries }

// Directionality reports how edges are stored.
func (g *AdjacencyMatrixGraph) Directionality() Directionality { return g.dir }

// Adjacent reports whether entry (u, v) is stored.
func (g *AdjacencyMatrixGraph) Adjacent(u, v int) bool {
	if checkNode(u, len(g.rows)) != nil {
		return false
	}
	_, ok := g.find(u, v)
	return ok
}

// Weight returns the stored weight of (u, v), or +Inf if there is no edge.
func (g *AdjacencyMatrixGraph) Weight(u, v int) float64 {
	if checkNode(u, len(g.rows)) != nil {
		return math.Inf(1)
	}
	i, ok := g.find(u, v)
	if !ok {
		return math.Inf(1)
	}
	return g.rows[u][i].w.Cost()
}

// Degree returns the number of stored entries in row u.
func (g *AdjacencyMatrixGraph) Degree(u int) int { return len(g.rows[u]) }

// Neighbours yields the columns of row u in ascending order.
func (g *AdjacencyMatrixGraph) Neighbours(u int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range g.rows[u] {
			if !yield(e.col) {
				return
			}
		}
	}
}

// Edges yields every stored entry in CSR order.
func (g *AdjacencyMatrixGraph) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for u, row := range g.rows {
			for _, e := range row {
				if !yield(Edge{U: u, V: e.col}) {
					return
				}
			}
		}
	}
}

// AddEdge stores (u, v) with weight w, overwriting an existing entry.
// Undirected graphs also store (v, u).
func (g *AdjacencyMatrixGraph) AddEdge(u, v int, w float64) error {
	if err := g.validate(u, v, w); err != nil {
		return err
	}
	g.set(u, v, EdgeWeight(w))
	if g.dir == Undirected && u != v {
		g.set(v, u, EdgeWeight(w))
	}
	return nil
}

// RemoveEdge deletes (u, v), and (v, u) when undirected.
// It fails with ErrEdgeNotFound if the edge is not stored.
func (g *AdjacencyMatrixGraph) RemoveEdge(u, v int) error {
	n := len(g.rows)
	if checkNode(u, n) != nil || checkNode(v, n) != nil {
		return fmt.Errorf("remove edge %d-%d: %w", u, v, ErrNodeOutOfRange)
	}
	if !g.del(u, v) {
		return fmt.Errorf("remove edge %d-%d: %w", u, v, ErrEdgeNotFound)
	}
	if g.dir == Undirected && u != v {
		if !g.del(v, u) {
			panic(fmt.Sprintf("graph: asymmetric matrix entry for edge %d-%d", u, v))
		}
	}
	return nil
}

// Connected reports whether every node is reachable from node 0,
// reading arcs in both directions.
func (g *AdjacencyMatrixGraph) Connected() bool {
	if g.dir == Directed {
		return reachesAll(g.Undirected())
	}
	return reachesAll(g)
}

// Biconnected reports whether the graph is connected, has at least two
// nodes and no articulation point.
func (g *AdjacencyMatrixGraph) Biconnected() bool {
	if g.dir == Directed {
		return Biconnected(g.Undirected())
	}
	return Biconnected(g)
}

// ConnectedWithout reports whether the graph stays connected once node v
// and its incident edges are removed.
func (g *AdjacencyMatrixGraph) ConnectedWithout(v int) bool {
	if g.dir == Directed {
		return ConnectedWithout(g.Undirected(), v)
	}
	return ConnectedWithout(g, v)
}

// RemoveUncriticalEdges returns an undirected copy from which every edge
// whose removal keeps the graph biconnected has been dropped. Edges are
// tried in CSR order of their (u < v) orientation; a single pass is
// repeated until nothing changes.
func (g *AdjacencyMatrixGraph) RemoveUncriticalEdges() *AdjacencyMatrixGraph {
	out := g.Undirected()

	var (
		changed = true
		e       Edge
		w       float64
	)
	for changed {
		changed = false
		for _, e = range out.undirectedEdges() {
			w = out.Weight(e.U, e.V)
			out.mustRemove(e.U, e.V)
			if out.Biconnected() {
				changed = true
				continue
			}
			out.set(e.U, e.V, EdgeWeight(w))
			out.set(e.V, e.U, EdgeWeight(w))
		}
	}

	return out
}

// Undirected returns a symmetric copy. For a directed graph each arc is
// mirrored; if both (u, v) and (v, u) exist the smaller weight wins.
func (g *AdjacencyMatrixGraph) Undirected() *AdjacencyMatrixGraph {
	if g.dir == Undirected {
		return g.Clone()
	}
	out := NewAdjacencyMatrixGraph(len(g.rows), Undirected)
	for u, row := range g.rows {
		for _, e := range row {
			out.merge(u, e.col, e.w)
			if u != e.col {
				out.merge(e.col, u, e.w)
			}
		}
	}
	return out
}

// Square returns the graph whose edges join nodes at hop distance one or
// two. Weights follow the (min, +) semiring: the weight of (i, j) is the
// cheapest of the direct edge and every two-hop connection i→k→j.
// Diagonal entries are pruned.
func (g *AdjacencyMatrixGraph) Square() *AdjacencyMatrixGraph {
	out := g.Clone()
	for i, row := range g.rows {
		for _, ik := range row {
			for _, kj := range g.rows[ik.col] {
				out.merge(i, kj.col, ik.w.Mul(kj.w))
			}
		}
	}
	out.Prune()
	return out
}

// Prune drops diagonal entries and entries whose weight is not finite.
func (g *AdjacencyMatrixGraph) Prune() {
	for u := range g.rows {
		before := len(g.rows[u])
		g.rows[u] = slices.DeleteFunc(g.rows[u], func(e entry) bool {
			c := e.w.Cost()
			return e.col == u || math.IsInf(c, 0) || math.IsNaN(c)
		})
		g.entries -= before - len(g.rows[u])
	}
}

// Clone returns an independent deep copy.
func (g *AdjacencyMatrixGraph) Clone() *AdjacencyMatrixGraph {
	out := &AdjacencyMatrixGraph{rows: make([][]entry, len(g.rows)), dir: g.dir, entries: g.entries}
	for u := range g.rows {
		out.rows[u] = slices.Clone(g.rows[u])
	}
	return out
}

// ToAdjacencyList returns the list form of the graph. Row order is kept,
// so neighbour lists come out sorted.
func (g *AdjacencyMatrixGraph) ToAdjacencyList() *AdjacencyListGraph {
	out := NewAdjacencyListGraph(len(g.rows), g.dir)
	for u, row := range g.rows {
		out.adj[u] = make([]int, 0, len(row))
		for _, e := range row {
			out.adj[u] = append(out.adj[u], e.col)
		}
	}
	out.edges = g.NumberOfEdges()
	return out
}

// undirectedEdges lists each undirected edge once as (u, v) with u < v.
func (g *AdjacencyMatrixGraph) undirectedEdges() []Edge {
	out := make([]Edge, 0, g.entries/2)
	for u, row := range g.rows {
		for _, e := range row {
			if u < e.col {
				out = append(out, Edge{U: u, V: e.col})
			}
		}
	}
	return out
}

func (g *AdjacencyMatrixGraph) validate(u, v int, w float64) error {
	n := len(g.rows)
	if checkNode(u, n) != nil || checkNode(v, n) != nil {
		return fmt.Errorf("edge %d-%d: %w", u, v, ErrNodeOutOfRange)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("edge %d-%d weight %v: %w", u, v, w, ErrBadWeight)
	}
	return nil
}

// find locates column v in row u by binary search.
func (g *AdjacencyMatrixGraph) find(u, v int) (int, bool) {
	return slices.BinarySearchFunc(g.rows[u], v, func(e entry, col int) int {
		return cmp.Compare(e.col, col)
	})
}

// set inserts or overwrites (u, v).
func (g *AdjacencyMatrixGraph) set(u, v int, w EdgeWeight) {
	i, ok := g.find(u, v)
	if ok {
		g.rows[u][i].w = w
		return
	}
	g.rows[u] = slices.Insert(g.rows[u], i, entry{col: v, w: w})
	g.entries++
}

// merge inserts (u, v) or combines it with the stored weight via Add.
func (g *AdjacencyMatrixGraph) merge(u, v int, w EdgeWeight) {
	i, ok := g.find(u, v)
	if ok {
		g.rows[u][i].w = g.rows[u][i].w.Add(w)
		return
	}
	g.rows[u] = slices.Insert(g.rows[u], i, entry{col: v, w: w})
	g.entries++
}

// del removes (u, v) and reports whether it was present.
func (g *AdjacencyMatrixGraph) del(u, v int) bool {
	i, ok := g.find(u, v)
	if !ok {
		return false
	}
	g.rows[u] = slices.Delete(g.rows[u], i, i+1)
	g.entries--
	return true
}

// mustRemove removes an edge known to be present.
func (g *AdjacencyMatrixGraph) mustRemove(u, v int) {
	if err := g.RemoveEdge(u, v); err != nil {
		panic(err)
	}
}

// loops counts diagonal entries.
func (g *AdjacencyMatrixGraph) loops() int {
	var c int
	for u := range g.rows {
		if _, ok := g.find(u, u); ok {
			c++
		}
	}
	return c
}
