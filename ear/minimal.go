package ear

import (
	"fmt"

	"github.com/katalvlaran/btsp/graph"
)

// MinimallyBiconnectedSubgraph returns a spanning subgraph of g that is
// biconnected and from which no single edge can be removed without losing
// biconnectivity. g itself is not modified.
//
// Edges are tried in iteration order (u < v orientation) by removing them,
// testing biconnectivity and restoring them on failure. Passes repeat until
// one removes nothing.
//
// Errors: ErrDirected, ErrNotBiconnected.
func MinimallyBiconnectedSubgraph(g *graph.AdjacencyListGraph) (*graph.AdjacencyListGraph, error) {
	return minimize(g, graph.Edge{U: -1, V: -1})
}

// EdgeKeepingMinimallyBiconnectedSubgraph is MinimallyBiconnectedSubgraph
// that never removes the edge keep (in either orientation).
func EdgeKeepingMinimallyBiconnectedSubgraph(g *graph.AdjacencyListGraph, keep graph.Edge) (*graph.AdjacencyListGraph, error) {
	if !g.Adjacent(keep.U, keep.V) {
		return nil, fmt.Errorf("keep edge %v: %w", keep, graph.ErrEdgeNotFound)
	}
	return minimize(g, keep.Normalize())
}

func minimize(g *graph.AdjacencyListGraph, keep graph.Edge) (*graph.AdjacencyListGraph, error) {
	if g.Directionality() != graph.Undirected {
		return nil, ErrDirected
	}
	if !graph.Biconnected(g) {
		return nil, ErrNotBiconnected
	}

	out := g.Clone()
	for changed := true; changed; {
		changed = false
		for _, e := range forwardEdges(out) {
			if e == keep {
				continue
			}
			if tryRemove(out, e) {
				changed = true
			}
		}
	}

	return out, nil
}

// tryRemove deletes e and keeps the deletion only if g stays biconnected.
func tryRemove(g *graph.AdjacencyListGraph, e graph.Edge) bool {
	if err := g.RemoveEdge(e.U, e.V); err != nil {
		// e was listed from g a moment ago.
		panic(err)
	}
	if graph.Biconnected(g) {
		return true
	}
	if err := g.AddEdge(e.U, e.V); err != nil {
		panic(err)
	}
	return false
}

// forwardEdges snapshots each undirected edge once as (u, v) with u < v,
// in node-major insertion order. Parallel edges appear once per copy.
func forwardEdges(g *graph.AdjacencyListGraph) []graph.Edge {
	out := make([]graph.Edge, 0, g.NumberOfEdges())
	for e := range g.Edges() {
		if e.U < e.V {
			out = append(out, e)
		}
	}
	return out
}
