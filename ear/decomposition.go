package ear

import (
	"fmt"

	"github.com/katalvlaran/btsp/graph"
)

// Decomposition is an ordered sequence of ears over Nodes nodes.
//
// Each ear is a node sequence; a closed ear (cycle) repeats its first node
// at the end. Ears[0] is the initial cycle. ArticulationPoints lists, in
// ascending order, the cut vertices detected while decomposing.
type Decomposition struct {
	Ears               [][]int `json:"ears"`
	ArticulationPoints []int   `json:"articulationPoints"`
	Nodes              int     `json:"nodes"`
}

// Open reports whether no articulation point was found, i.e. every ear
// after the first is a path attached at two distinct earlier nodes.
func (d Decomposition) Open() bool { return len(d.ArticulationPoints) == 0 }

// NumberOfEdges returns the total number of ear edges.
func (d Decomposition) NumberOfEdges() int {
	var m int
	for _, e := range d.Ears {
		if len(e) > 0 {
			m += len(e) - 1
		}
	}
	return m
}

// each calls fn for every consecutive node pair of every ear.
func (d Decomposition) each(fn func(u, v int) error) error {
	for i, e := range d.Ears {
		for j := 0; j+1 < len(e); j++ {
			if err := fn(e[j], e[j+1]); err != nil {
				return fmt.Errorf("ear %d: %w", i, err)
			}
		}
	}
	return nil
}

// ToGraph rebuilds the undirected graph covered by the ears with unit
// weights. For a decomposition of a biconnected graph the edge set equals
// the original one.
func ToGraph(d Decomposition) (*graph.AdjacencyMatrixGraph, error) {
	g := graph.NewAdjacencyMatrixGraph(d.Nodes, graph.Undirected)
	if err := d.each(func(u, v int) error { return g.AddEdge(u, v, 1) }); err != nil {
		return nil, err
	}
	return g, nil
}

// ToAdjacencyList rebuilds the covered graph in list form. Edges are
// appended ear by ear in ear order, which fixes the neighbour order the
// Euler stage later depends on.
func ToAdjacencyList(d Decomposition) (*graph.AdjacencyListGraph, error) {
	g := graph.NewAdjacencyListGraph(d.Nodes, graph.Undirected)
	if err := d.each(g.AddEdge); err != nil {
		return nil, err
	}
	return g, nil
}
