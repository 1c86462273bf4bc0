package graph

import (
	"iter"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Euclidean is the complete graph over a planar point set.
// Node i is points[i]; weights are straight-line distances computed on
// demand, nothing per edge is stored.
type Euclidean struct {
	points []orb.Point
}

// NewEuclidean copies points into a new complete graph.
func NewEuclidean(points []orb.Point) *Euclidean {
	return &Euclidean{points: slices.Clone(points)}
}

// NumberOfNodes returns the number of points.
func (e *Euclidean) NumberOfNodes() int { return len(e.points) }

// NumberOfEdges returns n(n-1)/2.
func (e *Euclidean) NumberOfEdges() int {
	n := len(e.points)
	return n * (n - 1) / 2
}

// Adjacent holds for every pair of distinct, valid nodes.
func (e *Euclidean) Adjacent(u, v int) bool {
	n := len(e.points)
	return u != v && checkNode(u, n) == nil && checkNode(v, n) == nil
}

// Connected always holds for a complete graph.
func (e *Euclidean) Connected() bool { return true }

// Weight returns the Euclidean distance between points u and v.
func (e *Euclidean) Weight(u, v int) float64 {
	return planar.Distance(e.points[u], e.points[v])
}

// EdgeWeight returns the weight of edge ed.
func (e *Euclidean) EdgeWeight(ed Edge) float64 { return e.Weight(ed.U, ed.V) }

// Position returns the coordinates of node u.
func (e *Euclidean) Position(u int) orb.Point { return e.points[u] }

// Points returns a copy of the point set.
func (e *Euclidean) Points() []orb.Point { return slices.Clone(e.points) }

// Degree returns n-1.
func (e *Euclidean) Degree(int) int { return len(e.points) - 1 }

// Neighbours yields every other node in ascending order.
func (e *Euclidean) Neighbours(u int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := range e.points {
			if v == u {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Edges yields every ordered pair (u, v), u != v, row by row.
func (e *Euclidean) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for u := range e.points {
			for v := range e.points {
				if u == v {
					continue
				}
				if !yield(Edge{U: u, V: v}) {
					return
				}
			}
		}
	}
}
