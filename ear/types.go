package ear

import "errors"

var (
	// ErrTooFewNodes is returned when a decomposition or augmentation is
	// requested on fewer than three nodes.
	ErrTooFewNodes = errors.New("ear: at least three nodes are required")

	// ErrDisconnected is returned when the input graph is not connected.
	ErrDisconnected = errors.New("ear: graph is not connected")

	// ErrDirected is returned when a directed graph is given where an
	// undirected one is required.
	ErrDirected = errors.New("ear: graph must be undirected")

	// ErrNotBiconnected is returned when a subgraph operation receives a
	// graph that is not biconnected to begin with.
	ErrNotBiconnected = errors.New("ear: graph is not biconnected")

	// ErrEdgeOutOfRange is returned for a virtual edge with invalid endpoints.
	ErrEdgeOutOfRange = errors.New("ear: edge endpoint out of range")
)
