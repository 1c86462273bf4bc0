package btsp

import (
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/btsp/ear"
	"github.com/katalvlaran/btsp/euler"
	"github.com/katalvlaran/btsp/graph"
)

// copies is the number of graph copies in the five-fold graph.
const copies = 5

// ApproximateBTSPP computes a Hamiltonian path from s to t through the
// points of e whose longest edge is at most twice the optimal value.
//
// Steps:
//  1. Augment the graph with the virtual edge s–t until it is
//     biconnected; the bound ignores the virtual edge.
//  2. Reduce to a minimally biconnected subgraph that keeps s–t, then drop
//     s–t.
//  3. Build the five-fold graph, decompose it and find a Hamiltonian cycle
//     in its square.
//  4. Cut the s–t path out of a copy the cycle traverses in one piece.
//
// Two and three points have a single s–t path, which is returned directly.
//
// Errors: ErrTooFewPoints, ErrEndpointOutOfRange, ErrSameEndpoints,
// euler.ErrNoCycle. Internal consistency failures panic with ErrInvariant.
func ApproximateBTSPP(e *graph.Euclidean, s, t int, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	log := o.Logger.WithFields(logrus.Fields{"variant": "path", "s": s, "t": t})
	n := e.NumberOfNodes()
	if n < 2 {
		return Result{}, fmt.Errorf("path through %d points: %w", n, ErrTooFewPoints)
	}
	if s < 0 || s >= n || t < 0 || t >= n {
		return Result{}, fmt.Errorf("endpoints %d, %d with %d points: %w", s, t, n, ErrEndpointOutOfRange)
	}
	if s == t {
		return Result{}, fmt.Errorf("endpoints %d, %d: %w", s, t, ErrSameEndpoints)
	}
	start := time.Now()
	st := graph.Edge{U: s, V: t}

	if n == 2 {
		res := trivialPath(e, st)
		finish(o, log, res, false)
		return res, nil
	}

	// 1) Biconnected spanning graph including s–t.
	bic, bound, err := ear.EdgeAugmentedBiconnectedSpanningGraph(e, st)
	if err != nil {
		return Result{}, fmt.Errorf("btsp: %w", err)
	}
	log.WithFields(logrus.Fields{"nodes": n, "edges": bic.NumberOfEdges(), "bound": bound}).
		Debug("edge augmented spanning graph")

	var (
		tour []int
		open ear.Decomposition
	)
	if n == 3 {
		// The middle node is forced.
		tour = []int{s, 3 - s - t, t}
		if open, err = ear.Schmidt(bic); err != nil {
			return Result{}, fmt.Errorf("btsp: %w", err)
		}
	} else {
		tour, open, err = fiveFoldPath(bic, st, log)
		if err != nil {
			return Result{}, err
		}
	}

	bn := FindBottleneck(e, tour, false)
	res := Result{
		BiconnectedGraph: bic,
		EarDecomposition: open,
		Tour:             tour,
		Objective:        e.EdgeWeight(bn),
		BottleneckEdge:   bn,
		LowerBound:       bound,
	}

	finish(o, log.WithField("elapsed", time.Since(start)), res, false)
	return res, nil
}

// fiveFoldPath runs steps 2 to 4 of ApproximateBTSPP.
func fiveFoldPath(bic *graph.AdjacencyMatrixGraph, st graph.Edge, log logrus.FieldLogger) ([]int, ear.Decomposition, error) {
	n := bic.NumberOfNodes()

	// 2) Minimal subgraph without the virtual edge.
	minimal, err := minimalSubgraph(bic, &st)
	if err != nil {
		return nil, ear.Decomposition{}, err
	}
	if err = minimal.RemoveEdge(st.U, st.V); err != nil {
		return nil, ear.Decomposition{}, fmt.Errorf("btsp: drop %v: %w", st, err)
	}

	// 3) Five-fold graph and a Hamiltonian cycle in its square.
	five, err := FiveFoldGraph(minimal, st.U, st.V)
	if err != nil {
		return nil, ear.Decomposition{}, err
	}
	open, err := openDecomposition(five)
	if err != nil {
		return nil, ear.Decomposition{}, err
	}
	log.WithFields(logrus.Fields{"nodes": five.NumberOfNodes(), "edges": five.NumberOfEdges(), "ears": len(open.Ears)}).
		Debug("five-fold graph")

	whole, err := euler.HamiltonCycle(open)
	if err != nil {
		return nil, ear.Decomposition{}, fmt.Errorf("btsp: %w", err)
	}

	// 4) Cut out the path.
	tour, err := ExtractHamiltonPath(whole, st.U, st.V, copies*n, copies*n+1)
	if err != nil {
		invariant("path extraction: %v", err)
	}
	return tour, open, nil
}

// trivialPath is the only path through two points.
func trivialPath(e *graph.Euclidean, st graph.Edge) Result {
	w := e.EdgeWeight(st)
	g, err := graph.NewAdjacencyMatrixGraphFromTriplets(2, graph.Undirected,
		[]graph.Triplet{{Row: st.U, Col: st.V, Weight: w}})
	if err != nil {
		invariant("two point graph: %v", err)
	}
	return Result{
		BiconnectedGraph: g,
		EarDecomposition: ear.Decomposition{ArticulationPoints: []int{}, Nodes: 2},
		Tour:             []int{st.U, st.V},
		Objective:        w,
		BottleneckEdge:   st,
		LowerBound:       w,
	}
}

// FiveFoldGraph returns five disjoint copies of minimal plus two nodes
// x = 5n and y = 5n+1, with x joined to every copy of s and y to every
// copy of t. Copy i holds nodes i·n .. i·n+n-1 in the order of minimal.
//
// The result has 5n+2 nodes and 5·|E|+10 edges.
//
// Errors: ErrEndpointOutOfRange, ErrSameEndpoints, ear.ErrDirected.
func FiveFoldGraph(minimal *graph.AdjacencyListGraph, s, t int) (*graph.AdjacencyListGraph, error) {
	n := minimal.NumberOfNodes()
	if s < 0 || s >= n || t < 0 || t >= n {
		return nil, fmt.Errorf("five-fold graph endpoints %d, %d: %w", s, t, ErrEndpointOutOfRange)
	}
	if s == t {
		return nil, fmt.Errorf("five-fold graph endpoints %d, %d: %w", s, t, ErrSameEndpoints)
	}
	if minimal.Directionality() != graph.Undirected {
		return nil, ear.ErrDirected
	}

	base := minimal.AdjacencyList()
	adj := make([][]int, 0, copies*n+2)
	for i := 0; i < copies; i++ {
		for u := range base {
			row := make([]int, len(base[u]))
			for k, v := range base[u] {
				row[k] = v + i*n
			}
			adj = append(adj, row)
		}
	}
	adj = append(adj, nil, nil) // x, y

	five, err := graph.NewAdjacencyListGraphFrom(adj, graph.Undirected)
	if err != nil {
		return nil, fmt.Errorf("five-fold graph: %w", err)
	}
	x, y := copies*n, copies*n+1
	for i := 0; i < copies; i++ {
		if err = five.AddEdge(i*n+s, x); err != nil {
			return nil, err
		}
		if err = five.AddEdge(i*n+t, y); err != nil {
			return nil, err
		}
	}

	return five, nil
}

// ExtractHamiltonPath cuts the s–t path out of a Hamiltonian cycle of the
// five-fold graph built for s and t, with auxiliary nodes x and y.
//
// The cycle neighbours of x and y touch at most four copies. A copy they
// do not touch can only be entered and left through its s and t, so the
// cycle runs through it in one piece. The first such copy is sliced out,
// oriented from s to t and shifted back to indices 0..n-1.
//
// Errors: ErrMalformedCycle if whole does not have 5n+2 distinct nodes,
// x or y is missing, or no copy is traversed in one piece.
func ExtractHamiltonPath(whole []int, s, t, x, y int) ([]int, error) {
	size := len(whole)
	if size < copies*2+2 || (size-2)%copies != 0 {
		return nil, fmt.Errorf("%w: %d nodes", ErrMalformedCycle, size)
	}
	n := (size - 2) / copies

	pos := make([]int, size)
	for i := range pos {
		pos[i] = -1
	}
	for i, v := range whole {
		if v < 0 || v >= size || pos[v] >= 0 {
			return nil, fmt.Errorf("%w: node %d at %d", ErrMalformedCycle, v, i)
		}
		pos[v] = i
	}
	if x < 0 || x >= size || y < 0 || y >= size {
		return nil, fmt.Errorf("%w: auxiliary nodes %d, %d", ErrMalformedCycle, x, y)
	}

	next := func(i int) int { return (i + 1) % size }
	prev := func(i int) int { return (i - 1 + size) % size }

	// 1) Mark the copies next to x and y.
	var touched [copies]bool
	for _, p := range []int{pos[x], pos[y]} {
		for _, q := range []int{next(p), prev(p)} {
			if c := whole[q] / n; c < copies {
				touched[c] = true
			}
		}
	}
	clean := slices.Index(touched[:], false)
	if clean < 0 {
		return nil, fmt.Errorf("%w: every copy touches x or y", ErrMalformedCycle)
	}

	// 2) Slice the clean copy between its s and t.
	offset := clean * n
	ps, pt := pos[offset+s], pos[offset+t]
	lo, hi := min(ps, pt), max(ps, pt)

	path := make([]int, 0, n)
	switch {
	case hi-lo == n-1:
		path = append(path, whole[lo:hi+1]...)
		if pt < ps {
			slices.Reverse(path)
		}
	case size-(hi-lo) == n-1:
		for i := hi; i != lo; i = next(i) {
			path = append(path, whole[i])
		}
		path = append(path, whole[lo])
		if ps < pt {
			slices.Reverse(path)
		}
	default:
		return nil, fmt.Errorf("%w: copy %d is split", ErrMalformedCycle, clean)
	}

	// 3) Back to the original indices.
	for i := range path {
		path[i] -= offset
		if path[i] < 0 || path[i] >= n {
			return nil, fmt.Errorf("%w: copy %d is split", ErrMalformedCycle, clean)
		}
	}
	if path[0] != s || path[n-1] != t {
		return nil, fmt.Errorf("%w: path %v does not run from %d to %d", ErrMalformedCycle, path, s, t)
	}

	return path, nil
}
