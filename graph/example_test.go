package graph_test

import (
	"fmt"

	"github.com/katalvlaran/btsp/graph"
)

// ExampleArticulationPoints finds the shared node of two triangles.
//
//	0       3
//	| \   / |
//	|  2    |
//	| /   \ |
//	1       4
func ExampleArticulationPoints() {
	g := graph.NewAdjacencyListGraph(5, graph.Undirected)
	for _, e := range []graph.Edge{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}} {
		_ = g.AddEdge(e.U, e.V)
	}

	fmt.Println(graph.ArticulationPoints(g))
	fmt.Println(graph.Biconnected(g))
	// Output:
	// [2]
	// false
}

// ExampleAdjacencyMatrixGraph_Square shows the two-hop closure of a path.
func ExampleAdjacencyMatrixGraph_Square() {
	g := graph.NewAdjacencyMatrixGraph(3, graph.Undirected)
	_ = g.AddEdge(0, 1, 1.5)
	_ = g.AddEdge(1, 2, 2.5)

	sq := g.Square()
	fmt.Println(sq.Adjacent(0, 2), sq.Weight(0, 2))
	// Output:
	// true 4
}

// ExampleDFS prints the exploration order on a 4-cycle.
func ExampleDFS() {
	g := graph.NewAdjacencyMatrixGraph(4, graph.Undirected)
	for i := 0; i < 4; i++ {
		_ = g.AddEdge(i, (i+1)%4, 1)
	}

	tree, err := graph.DFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree.ExplorationOrder())
	// Output:
	// [0 3 2 1]
}
