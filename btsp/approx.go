package btsp

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/btsp/ear"
	"github.com/katalvlaran/btsp/euler"
	"github.com/katalvlaran/btsp/graph"
)

// ApproximateBTSP computes a Hamiltonian cycle through the points of e
// whose longest edge is at most twice the optimal bottleneck value.
//
// Steps:
//  1. Add edges shortest first until the graph is biconnected; the last
//     weight added is the lower bound.
//  2. Decompose it into ears and strip it to a minimally biconnected
//     subgraph.
//  3. Decompose the minimal graph again; the result is open.
//  4. Turn the open decomposition into a Hamiltonian cycle of the square
//     of the minimal graph (package euler).
//  5. Report the heaviest tour edge.
//
// Every tour edge joins two nodes at distance at most two in the
// biconnected graph, so by the triangle inequality it weighs at most twice
// the lower bound.
//
// Errors: ErrTooFewPoints for fewer than three points, euler.ErrNoCycle
// if the Euler stage and its fallbacks all give up. Internal consistency
// failures panic with ErrInvariant.
func ApproximateBTSP(e *graph.Euclidean, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	log := o.Logger.WithField("variant", "cycle")
	n := e.NumberOfNodes()
	if n < 3 {
		return Result{}, fmt.Errorf("cycle through %d points: %w", n, ErrTooFewPoints)
	}
	start := time.Now()

	// 1) Biconnected spanning graph and lower bound.
	bic, bound, err := ear.BiconnectedSpanningGraph(e)
	if err != nil {
		return Result{}, fmt.Errorf("btsp: %w", err)
	}
	log.WithFields(logrus.Fields{"nodes": n, "edges": bic.NumberOfEdges(), "bound": bound}).
		Debug("biconnected spanning graph")

	// 2) Minimally biconnected subgraph.
	minimal, err := minimalSubgraph(bic, nil)
	if err != nil {
		return Result{}, err
	}

	// 3) Open ear decomposition.
	open, err := openDecomposition(minimal)
	if err != nil {
		return Result{}, err
	}
	log.WithFields(logrus.Fields{"ears": len(open.Ears), "edges": minimal.NumberOfEdges()}).
		Debug("open ear decomposition")

	// 4) Hamiltonian cycle in the square.
	tour, err := euler.HamiltonCycle(open)
	if err != nil {
		return Result{}, fmt.Errorf("btsp: %w", err)
	}

	// 5) Bottleneck.
	bn := FindBottleneck(e, tour, true)
	res := Result{
		BiconnectedGraph: bic,
		EarDecomposition: open,
		Tour:             tour,
		Objective:        e.EdgeWeight(bn),
		BottleneckEdge:   bn,
		LowerBound:       bound,
	}

	finish(o, log.WithField("elapsed", time.Since(start)), res, true)
	return res, nil
}

// minimalSubgraph decomposes g, rebuilds it from the ears and removes
// every edge that is not needed for biconnectivity. A non-nil keep is
// added when missing and never removed.
func minimalSubgraph(g *graph.AdjacencyMatrixGraph, keep *graph.Edge) (*graph.AdjacencyListGraph, error) {
	d, err := ear.Schmidt(g)
	if err != nil {
		return nil, fmt.Errorf("btsp: decompose spanning graph: %w", err)
	}
	fromEars, err := ear.ToAdjacencyList(d)
	if err != nil {
		return nil, fmt.Errorf("btsp: rebuild from ears: %w", err)
	}

	if keep == nil {
		minimal, err := ear.MinimallyBiconnectedSubgraph(fromEars)
		if err != nil {
			return nil, fmt.Errorf("btsp: minimal subgraph: %w", err)
		}
		return minimal, nil
	}

	if !fromEars.Adjacent(keep.U, keep.V) {
		if err = fromEars.AddEdge(keep.U, keep.V); err != nil {
			return nil, fmt.Errorf("btsp: restore %v: %w", *keep, err)
		}
	}
	minimal, err := ear.EdgeKeepingMinimallyBiconnectedSubgraph(fromEars, *keep)
	if err != nil {
		return nil, fmt.Errorf("btsp: minimal subgraph keeping %v: %w", *keep, err)
	}
	return minimal, nil
}

// openDecomposition decomposes g in sorted neighbour order. A minimally
// biconnected input always yields an open decomposition.
func openDecomposition(g *graph.AdjacencyListGraph) (ear.Decomposition, error) {
	d, err := ear.Schmidt(graph.NewAdjacencyMatrixGraphFromList(g))
	if err != nil {
		return ear.Decomposition{}, fmt.Errorf("btsp: decompose minimal graph: %w", err)
	}
	if !d.Open() {
		invariant("decomposition of a biconnected graph has articulation points %v", d.ArticulationPoints)
	}
	return d, nil
}

// finish logs the report and runs the postcondition checks.
func finish(o Options, log logrus.FieldLogger, res Result, cycle bool) {
	if o.Report {
		log.WithFields(logrus.Fields{
			"objective":  res.Objective,
			"lowerBound": res.LowerBound,
			"guarantee":  res.Ratio(),
		}).Info("solved")
	}
	if o.Validation {
		validate(res, cycle)
	}
}

// validate panics with ErrInvariant if res breaks the approximation
// guarantee or steps outside the square of its biconnected graph.
func validate(res Result, cycle bool) {
	if res.LowerBound > 0 {
		r := res.Ratio()
		if r < 1-ratioTolerance || r > 2+ratioTolerance {
			invariant("guarantee %g outside [1, 2] (objective %g, bound %g)", r, res.Objective, res.LowerBound)
		}
	}

	sq := res.BiconnectedGraph.Square()
	steps := len(res.Tour) - 1
	if cycle {
		steps++
	}
	for i := 0; i < steps; i++ {
		u, v := res.Tour[i], res.Tour[(i+1)%len(res.Tour)]
		if !sq.Adjacent(u, v) {
			invariant("tour step %d-%d leaves the square of the spanning graph", u, v)
		}
	}
}
