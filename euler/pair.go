package euler

import (
	"fmt"

	"github.com/katalvlaran/btsp/ear"
	"github.com/katalvlaran/btsp/graph"
)

// GraphPair couples the undirected multigraph the Euler tour runs on with
// the digraph that records which node visits may be skipped.
type GraphPair struct {
	// Digraph holds one arc per single edge and both arcs per doubled edge.
	Digraph *graph.AdjacencyListGraph
	// Graph is the undirected multigraph with doubled edges.
	Graph *graph.AdjacencyListGraph
}

// indexedEdge is an ear edge waiting for its orientation.
type indexedEdge struct {
	e     graph.Edge
	index int
}

// NewGraphPair orients the ears of an open decomposition.
//
// Ears are processed from the last to the first; d.Ears[0] is the initial
// cycle and is handled like a path from the root back to the root.
//
//   - The last ear gets arcs along the ear except for its final edge,
//     which is reversed. Its inner nodes have degree two, so nothing is
//     doubled there.
//   - Every other ear [a, x1, …, xk, b] gets the arc a→x1. Walking
//     i = 1..k, an inner node xi of odd current degree doubles the edge
//     (xi, xi+1): one more undirected copy and arcs in both directions.
//     If something was doubled, the last doubled edge is removed from both
//     graphs entirely, edges before it are directed forward and edges after
//     it backward. Otherwise all remaining edges are forward except the
//     last, which is reversed.
//
// Afterwards every node of Graph has even degree.
//
// Errors: ErrNoEars, ErrNotOpen.
func NewGraphPair(d ear.Decomposition) (*GraphPair, error) {
	if len(d.Ears) == 0 {
		return nil, ErrNoEars
	}
	if !d.Open() {
		return nil, fmt.Errorf("%w: articulation points %v", ErrNotOpen, d.ArticulationPoints)
	}

	g, err := ear.ToAdjacencyList(d)
	if err != nil {
		return nil, fmt.Errorf("graph pair: %w", err)
	}
	p := &GraphPair{Digraph: graph.NewAdjacencyListGraph(d.Nodes, graph.Directed), Graph: g}

	// The ear processed first never doubles an edge.
	last := d.Ears[len(d.Ears)-1]
	if len(last) < 2 {
		return nil, fmt.Errorf("graph pair: ear %v is too short", last)
	}
	for i := 0; i+2 < len(last); i++ {
		p.arc(last[i], last[i+1])
	}
	p.arc(last[len(last)-1], last[len(last)-2])

	for j := len(d.Ears) - 2; j >= 0; j-- {
		if err = p.orient(d.Ears[j]); err != nil {
			return nil, fmt.Errorf("graph pair: ear %d: %w", j, err)
		}
	}

	return p, nil
}

// orient handles one ear that may double edges.
func (p *GraphPair) orient(e []int) error {
	if len(e) < 2 {
		return fmt.Errorf("ear %v is too short", e)
	}
	p.arc(e[0], e[1]) // the first edge points into the ear

	var (
		lastDoubled int
		pending     = make([]indexedEdge, 0, len(e))
		u, v        int
	)
	for i := 1; i+1 < len(e); i++ {
		u, v = e[i], e[i+1]
		if p.Graph.Degree(u)%2 == 1 {
			if err := p.Graph.AddEdge(u, v); err != nil {
				return err
			}
			p.arc(u, v)
			p.arc(v, u)
			lastDoubled = i
			continue
		}
		pending = append(pending, indexedEdge{e: graph.Edge{U: u, V: v}, index: i})
	}

	if lastDoubled != 0 {
		// Drop the last doubled edge completely; it splits the ear.
		cut := graph.Edge{U: e[lastDoubled], V: e[lastDoubled+1]}
		for range 2 {
			if err := p.Graph.RemoveEdge(cut.U, cut.V); err != nil {
				return err
			}
		}
		if err := p.Digraph.RemoveEdge(cut.U, cut.V); err != nil {
			return err
		}
		if err := p.Digraph.RemoveEdge(cut.V, cut.U); err != nil {
			return err
		}

		for _, ie := range pending {
			if ie.index < lastDoubled {
				p.arc(ie.e.U, ie.e.V)
			} else {
				p.arc(ie.e.V, ie.e.U)
			}
		}
		return nil
	}

	for _, ie := range pending {
		if ie.index != len(e)-2 {
			p.arc(ie.e.U, ie.e.V)
		} else {
			p.arc(ie.e.V, ie.e.U)
		}
	}
	return nil
}

// arc adds u→v; indices come from a validated decomposition.
func (p *GraphPair) arc(u, v int) {
	if err := p.Digraph.AddEdge(u, v); err != nil {
		invariant("arc %d→%d: %v", u, v, err)
	}
}
