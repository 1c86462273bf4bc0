package graph_test

import (
	"slices"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/btsp/graph"
)

func TestEuclidean_Weights(t *testing.T) {
	pts := []orb.Point{{0, 0}, {3, 0}, {3, 4}}
	e := graph.NewEuclidean(pts)

	assert.Equal(t, 3, e.NumberOfNodes())
	assert.Equal(t, 3, e.NumberOfEdges())
	assert.InDelta(t, 3.0, e.Weight(0, 1), 1e-12)
	assert.InDelta(t, 5.0, e.Weight(0, 2), 1e-12)
	assert.InDelta(t, 5.0, e.EdgeWeight(graph.Edge{U: 2, V: 0}), 1e-12)
	assert.True(t, e.Connected())
}

func TestEuclidean_CompleteAdjacency(t *testing.T) {
	e := graph.NewEuclidean([]orb.Point{{0, 0}, {1, 0}, {2, 0}})
	assert.True(t, e.Adjacent(0, 2))
	assert.False(t, e.Adjacent(1, 1))
	assert.False(t, e.Adjacent(0, 3))
	assert.Equal(t, []int{0, 2}, slices.Collect(e.Neighbours(1)))
	assert.Equal(t, 2, e.Degree(0))

	var edges int
	for range e.Edges() {
		edges++
	}
	assert.Equal(t, 6, edges)
}

func TestEuclidean_PointsAreCopied(t *testing.T) {
	pts := []orb.Point{{0, 0}, {1, 1}}
	e := graph.NewEuclidean(pts)
	pts[0] = orb.Point{9, 9}
	assert.Equal(t, orb.Point{0, 0}, e.Position(0))

	out := e.Points()
	out[1] = orb.Point{7, 7}
	assert.Equal(t, orb.Point{1, 1}, e.Position(1))
}

func TestEuclidean_Biconnected(t *testing.T) {
	e := graph.NewEuclidean([]orb.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	require.True(t, graph.Biconnected(e))
}
