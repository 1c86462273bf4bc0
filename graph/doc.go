// Package graph provides the integer-indexed graph model used by the
// bottleneck TSP pipeline, together with the connectivity primitives the
// later stages rely on.
//
// Nodes are dense indices 0..n-1. Four representations share a small
// capability set (Graph, Weighted, Traversable):
//
//   - AdjacencyListGraph: neighbour lists, directed or undirected,
//     parallel edges allowed (used for multigraphs in the Euler stage).
//   - AdjacencyMatrixGraph: sparse row-major weighted storage with explicit
//     entry presence; undirected graphs store both triangles.
//   - Euclidean: complete graph over a point set, distances
//     computed on demand with orb/planar.
//   - DfsTree: rooted spanning tree produced by DFS.
//
// Connectivity primitives:
//
//   - DFS: iterative depth-first search with an explicit stack.
//   - ArticulationPoints: iterative Tarjan low-point computation, O(V+E).
//   - Biconnected: connected, at least two nodes, no articulation point.
//   - ConnectedWithout: connectivity after deleting a single node.
//
// Iteration order is deterministic: list graphs yield node 0..n-1 and then
// each neighbour list in insertion order; matrix graphs yield compressed
// sparse row order (node-major, ascending column).
//
// Mutating methods (AddEdge, RemoveEdge, ...) are not safe for concurrent
// use; read-only queries on a graph that is no longer mutated are.
package graph
