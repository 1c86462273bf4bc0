package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/btsp/graph"
)

func TestAdjacencyMatrix_ZeroWeightIsAnEdge(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(2, graph.Undirected)
	require.NoError(t, g.AddEdge(0, 1, 0))

	assert.True(t, g.Adjacent(0, 1))
	assert.True(t, g.Adjacent(1, 0))
	assert.Equal(t, 0.0, g.Weight(0, 1))
	assert.Equal(t, 1, g.NumberOfEdges())
	assert.Equal(t, 2, g.NonZeros())
}

func TestAdjacencyMatrix_AbsentWeightIsInf(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(3, graph.Undirected)
	assert.True(t, math.IsInf(g.Weight(0, 2), 1))
}

func TestAdjacencyMatrix_RemoveMissingEdge(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(3, graph.Undirected)
	require.NoError(t, g.AddEdge(0, 1, 2.5))

	assert.ErrorIs(t, g.RemoveEdge(0, 2), graph.ErrEdgeNotFound)
	require.NoError(t, g.RemoveEdge(1, 0))
	assert.False(t, g.Adjacent(0, 1))
	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestAdjacencyMatrix_RejectsBadInput(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(2, graph.Directed)
	assert.ErrorIs(t, g.AddEdge(0, 3, 1), graph.ErrNodeOutOfRange)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.NaN()), graph.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(0, 1, math.Inf(1)), graph.ErrBadWeight)
}

func TestAdjacencyMatrix_CSROrder(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(3, graph.Undirected)
	require.NoError(t, g.AddEdge(2, 0, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 1, 1))

	var got []graph.Edge
	for e := range g.Edges() {
		got = append(got, e)
	}
	want := []graph.Edge{{0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}}
	assert.Equal(t, want, got)
}

func TestAdjacencyMatrix_TripletsMergeWithMin(t *testing.T) {
	g, err := graph.NewAdjacencyMatrixGraphFromTriplets(3, graph.Undirected, []graph.Triplet{
		{Row: 0, Col: 1, Weight: 4},
		{Row: 1, Col: 0, Weight: 2},
		{Row: 1, Col: 2, Weight: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, g.Weight(0, 1))
	assert.Equal(t, 2.0, g.Weight(1, 0))
	assert.Equal(t, 2, g.NumberOfEdges())
}

func TestAdjacencyMatrix_Square(t *testing.T) {
	// Path 0-1-2-3 with weights 1, 2, 3.
	g := graph.NewAdjacencyMatrixGraph(4, graph.Undirected)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))

	sq := g.Square()
	assert.True(t, sq.Adjacent(0, 1))
	assert.True(t, sq.Adjacent(0, 2))
	assert.True(t, sq.Adjacent(1, 3))
	assert.False(t, sq.Adjacent(0, 3))
	assert.False(t, sq.Adjacent(1, 1))
	assert.Equal(t, 3.0, sq.Weight(0, 2))
	assert.Equal(t, 5.0, sq.Weight(1, 3))
	assert.Equal(t, 5, sq.NumberOfEdges())
}

func TestAdjacencyMatrix_BiconnectedAndConnectedWithout(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(4, graph.Undirected)
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddEdge(i, (i+1)%4, 1))
	}
	assert.True(t, g.Biconnected())
	for v := 0; v < 4; v++ {
		assert.True(t, g.ConnectedWithout(v))
	}

	require.NoError(t, g.RemoveEdge(3, 0))
	assert.False(t, g.Biconnected())
	assert.False(t, g.ConnectedWithout(1))
	assert.True(t, g.ConnectedWithout(0))
}

func TestAdjacencyMatrix_RemoveUncriticalEdges(t *testing.T) {
	// K4 minus nothing: a minimal biconnected spanning subgraph is a cycle.
	g := graph.NewAdjacencyMatrixGraph(4, graph.Undirected)
	for u := 0; u < 4; u++ {
		for v := u + 1; v < 4; v++ {
			require.NoError(t, g.AddEdge(u, v, 1))
		}
	}

	m := g.RemoveUncriticalEdges()
	require.True(t, m.Biconnected())
	assert.Equal(t, 4, m.NumberOfEdges())
	assert.Equal(t, 6, g.NumberOfEdges(), "input must not change")
}

func TestAdjacencyMatrix_ConversionsRoundTrip(t *testing.T) {
	l := graph.NewAdjacencyListGraph(3, graph.Undirected)
	require.NoError(t, l.AddEdge(2, 0))
	require.NoError(t, l.AddEdge(0, 1))

	m := graph.NewAdjacencyMatrixGraphFromList(l)
	assert.Equal(t, 2, m.NumberOfEdges())
	assert.Equal(t, 1.0, m.Weight(0, 2))

	back := m.ToAdjacencyList()
	assert.Equal(t, [][]int{{1, 2}, {0}, {0}}, back.AdjacencyList())
	assert.Equal(t, 2, back.NumberOfEdges())
}

func TestAdjacencyMatrix_DirectedUndirected(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(3, graph.Directed)
	require.NoError(t, g.AddEdge(0, 1, 3))
	require.NoError(t, g.AddEdge(1, 0, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	u := g.Undirected()
	assert.Equal(t, 1.0, u.Weight(0, 1))
	assert.True(t, u.Adjacent(2, 1))
	assert.Equal(t, 2, u.NumberOfEdges())
	assert.True(t, g.Connected())
}

func TestEdgeWeight_Semiring(t *testing.T) {
	a, b := graph.EdgeWeight(2), graph.EdgeWeight(5)
	assert.Equal(t, graph.EdgeWeight(2), a.Add(b))
	assert.Equal(t, graph.EdgeWeight(2), a.Add(a))
	assert.Equal(t, graph.EdgeWeight(7), a.Mul(b))
	assert.Equal(t, 2.0, a.Cost())
}

func TestEdge_ReverseInvert(t *testing.T) {
	e := graph.Edge{U: 1, V: 2}
	assert.Equal(t, graph.Edge{U: 2, V: 1}, e.Reverse())
	assert.NotEqual(t, e, e.Reverse())
	assert.Equal(t, e, e.Reverse().Normalize())

	e.Invert()
	assert.Equal(t, graph.Edge{U: 2, V: 1}, e)
	assert.Equal(t, "(2, 1)", e.String())
}
