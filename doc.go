// Package btsp is the root of a small library for the bottleneck
// traveling salesman problem on points in the plane: find a Hamiltonian
// cycle (or an s–t Hamiltonian path) whose longest edge is as short as
// possible.
//
// The solvers return a tour whose longest edge is at most twice the
// optimum, together with the lower bound that proves it.
//
// Packages:
//
//	graph/    adjacency list and sparse matrix graphs, the complete
//	          Euclidean graph, DFS trees, biconnectivity tests
//	ear/      Schmidt chain decomposition, biconnected augmentation,
//	          minimally biconnected subgraphs
//	euler/    Hamiltonian cycle in the square of a graph from an open ear
//	          decomposition
//	btsp/     ApproximateBTSP and ApproximateBTSPP, results, Solver
//	exact/    exponential exact solver for small instances
//	instance/ YAML/JSON instance files and generators
//	store/    bolthold result cache
//	cmd/btsp  command line front-end
//
// Quick example:
//
//	e := graph.NewEuclidean([]orb.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
//	res, err := btsp.ApproximateBTSP(e)
//	// res.Tour == [0 1 2 3], res.Objective == 1, res.LowerBound == 1
package btsp
