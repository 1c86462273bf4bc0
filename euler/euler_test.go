package euler_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/btsp/ear"
	"github.com/katalvlaran/btsp/euler"
	"github.com/katalvlaran/btsp/graph"
)

// theta is the open decomposition of the square 0-1-2-4 with the extra
// path 0-3-2, as produced by ear.Schmidt.
func theta() ear.Decomposition {
	return ear.Decomposition{
		Ears:               [][]int{{0, 1, 2, 4, 0}, {0, 3, 2}},
		ArticulationPoints: []int{},
		Nodes:              5,
	}
}

// assertInSquare checks that consecutive cycle nodes are at distance one
// or two in the graph covered by d.
func assertInSquare(t *testing.T, d ear.Decomposition, cycle []int) {
	t.Helper()
	g, err := ear.ToGraph(d)
	require.NoError(t, err)
	sq := g.Square()
	for i := range cycle {
		u, v := cycle[i], cycle[(i+1)%len(cycle)]
		assert.True(t, sq.Adjacent(u, v), "step %d-%d leaves the square", u, v)
	}
}

func TestNewGraphPair_Theta(t *testing.T) {
	p, err := euler.NewGraphPair(theta())
	require.NoError(t, err)

	// Node 2 doubled 2-4, node 4 then doubled 4-0, which was dropped again.
	assert.Equal(t, [][]int{{1, 3}, {0, 2}, {1, 4, 3, 4}, {0, 2}, {2, 2}}, p.Graph.AdjacencyList())
	assert.Equal(t, [][]int{{3, 1}, {2}, {3, 4}, {}, {2}}, p.Digraph.AdjacencyList())

	for u := 0; u < 5; u++ {
		assert.Zero(t, p.Graph.Degree(u)%2, "node %d has odd degree", u)
	}
}

func TestReduceToGminus_Theta(t *testing.T) {
	p, err := euler.NewGraphPair(theta())
	require.NoError(t, err)

	cuts := euler.ReduceToGminus(p.Digraph, p.Graph)
	assert.Equal(t, []int{2, 3}, cuts.Sorted())
	assert.Equal(t, [][]int{{1, 2}, {0, 4}, {4, 0}, {}, {2, 1}}, p.Graph.AdjacencyList())
}

func TestEulerTour(t *testing.T) {
	// Two triangles sharing node 0.
	adj := [][]int{{1, 2, 3, 4}, {0, 2}, {1, 0}, {0, 4}, {3, 0}}
	tour := euler.EulerTour(adj, 0)

	require.Len(t, tour, 7)
	assert.Equal(t, 0, tour[0])
	assert.Equal(t, 0, tour[6])
	used := make(map[graph.Edge]int)
	for i := 0; i+1 < len(tour); i++ {
		used[graph.Edge{U: tour[i], V: tour[i+1]}.Normalize()]++
	}
	assert.Len(t, used, 6)
	assert.Equal(t, []int{1, 2, 3, 4}, adj[0], "input must not change")
}

func TestTourStart(t *testing.T) {
	assert.Equal(t, 1, euler.TourStart([][]int{{}, {2, 2}, {1, 1}}))
	assert.Equal(t, 1, euler.TourStart([][]int{{1, 1}, {0, 0, 2}, {1}}))
	assert.Equal(t, -1, euler.TourStart([][]int{{}, {}}))
}

func TestInsertNodeCuts_Theta(t *testing.T) {
	p, err := euler.NewGraphPair(theta())
	require.NoError(t, err)
	cuts := euler.ReduceToGminus(p.Digraph, p.Graph)

	long := euler.InsertNodeCuts([]int{0, 1, 4, 2, 0}, cuts, p.Digraph)
	assert.Equal(t, []int{0, 1, 2, 4, 2, 3, 0}, long)
	assert.Empty(t, cuts)
}

func TestInsertNodeCuts_PanicsOnLeftover(t *testing.T) {
	dg := graph.NewAdjacencyListGraph(3, graph.Directed)
	require.NoError(t, dg.AddEdge(0, 2))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, euler.ErrInvariant))
	}()
	euler.InsertNodeCuts([]int{0, 1, 0}, euler.NodeSet{2: {}}, dg)
}

func TestShortcut_Theta(t *testing.T) {
	p, err := euler.NewGraphPair(theta())
	require.NoError(t, err)

	cycle := euler.Shortcut([]int{0, 1, 2, 4, 2, 3, 0}, p.Digraph)
	assert.Equal(t, []int{0, 1, 2, 4, 3}, cycle)
	assert.False(t, p.Digraph.Adjacent(2, 3), "consumed arc")
	assert.False(t, p.Digraph.Adjacent(2, 4), "consumed arc")
}

func TestHamiltonCycle_Theta(t *testing.T) {
	d := theta()
	cycle, err := euler.HamiltonCycle(d)
	require.NoError(t, err)

	if diff := cmp.Diff([]int{0, 1, 2, 4, 3}, cycle); diff != "" {
		t.Fatalf("cycle mismatch (-want +got):\n%s", diff)
	}
	assertInSquare(t, d, cycle)
}

func TestHamiltonCycle_FromSchmidt(t *testing.T) {
	g := graph.NewAdjacencyMatrixGraph(5, graph.Undirected)
	for _, e := range []graph.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {4, 2}} {
		require.NoError(t, g.AddEdge(e.U, e.V, 1))
	}
	d, err := ear.Schmidt(g)
	require.NoError(t, err)

	cycle, err := euler.HamiltonCycle(d)
	require.NoError(t, err)
	require.NoError(t, euler.ValidatePermutation(cycle, 5))
	assertInSquare(t, d, cycle)
}

func TestHamiltonCycle_SingleEar(t *testing.T) {
	d := ear.Decomposition{Ears: [][]int{{0, 2, 1, 3, 0}}, Nodes: 4}
	cycle, err := euler.HamiltonCycle(d)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, cycle)
}

func TestHamiltonCycle_Errors(t *testing.T) {
	_, err := euler.HamiltonCycle(ear.Decomposition{Nodes: 3})
	assert.ErrorIs(t, err, euler.ErrNoEars)

	notOpen := ear.Decomposition{
		Ears:               [][]int{{0, 1, 2, 0}, {2, 3, 4, 2}},
		ArticulationPoints: []int{2},
		Nodes:              5,
	}
	_, err = euler.HamiltonCycle(notOpen)
	assert.ErrorIs(t, err, euler.ErrNotOpen)

	_, err = euler.NewGraphPair(notOpen)
	assert.ErrorIs(t, err, euler.ErrNotOpen)
}

func TestValidatePermutation(t *testing.T) {
	assert.NoError(t, euler.ValidatePermutation([]int{2, 0, 1}, 3))
	assert.ErrorIs(t, euler.ValidatePermutation([]int{0, 1}, 3), euler.ErrNotPermutation)
	assert.ErrorIs(t, euler.ValidatePermutation([]int{0, 0, 1}, 3), euler.ErrNotPermutation)
	assert.ErrorIs(t, euler.ValidatePermutation([]int{0, 1, 3}, 3), euler.ErrNotPermutation)
	assert.ErrorIs(t, euler.ValidatePermutation(nil, 0), euler.ErrNotPermutation)
}
