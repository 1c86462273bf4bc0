// SPDX-License-Identifier: MIT

package graph

import (
	"errors"
	"iter"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrNodeOutOfRange indicates a node index outside [0, NumberOfNodes()).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")

	// ErrEdgeNotFound indicates that an edge to be removed does not exist.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEmptyGraph indicates an operation that needs at least one node.
	ErrEmptyGraph = errors.New("graph: graph has no nodes")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite")

	// ErrRootParent is the panic value when the parent of a DFS root is read.
	ErrRootParent = errors.New("graph: the root of a dfs tree has no parent")
)

// Directionality selects between directed and undirected storage.
type Directionality int

const (
	// Undirected graphs store every edge in both directions.
	Undirected Directionality = iota
	// Directed graphs store arcs exactly as inserted.
	Directed
)

// String implements fmt.Stringer.
func (d Directionality) String() string {
	if d == Directed {
		return "directed"
	}
	return "undirected"
}

// Graph is the capability every representation provides.
type Graph interface {
	// Adjacent reports whether the edge (u, v) is present.
	Adjacent(u, v int) bool
	// Connected reports whether all nodes are reachable from node 0,
	// ignoring edge directions.
	Connected() bool
	// NumberOfNodes returns n; nodes are 0..n-1.
	NumberOfNodes() int
	// NumberOfEdges returns the number of edges; undirected edges count once.
	NumberOfEdges() int
}

// Weighted graphs expose a cost per edge.
type Weighted interface {
	Graph
	// Weight returns the cost of (u, v), or +Inf if the edge is absent.
	Weight(u, v int) float64
}

// Traversable graphs can enumerate neighbours and edges.
type Traversable interface {
	Graph
	// Degree returns the number of stored neighbour entries of u.
	Degree(u int) int
	// Neighbours yields the neighbours of u in storage order.
	Neighbours(u int) iter.Seq[int]
	// Edges yields every stored edge; undirected edges appear once per direction.
	Edges() iter.Seq[Edge]
}

// checkNode validates a node index against n.
func checkNode(u, n int) error {
	if u < 0 || u >= n {
		return ErrNodeOutOfRange
	}
	return nil
}
