// SPDX-License-Identifier: MIT

// Package btsp approximates the Bottleneck Traveling Salesman Problem on
// Euclidean point sets: find a Hamiltonian cycle, or a Hamiltonian path
// between two fixed endpoints, whose longest edge is as short as possible.
//
// ApproximateBTSP and ApproximateBTSPP return tours whose longest edge is
// at most twice the optimum. They wire the other packages together:
//
//	points ──► ear.BiconnectedSpanningGraph ──► ear.Schmidt
//	       ──► ear.MinimallyBiconnectedSubgraph ──► ear.Schmidt (open)
//	       ──► euler.HamiltonCycle ──► FindBottleneck
//
// The path variant augments the spanning graph with the virtual edge s–t,
// strips it again from the minimal subgraph and solves the cycle problem
// on the five-fold graph (FiveFoldGraph), from whose tour the s–t path is
// cut (ExtractHamiltonPath).
//
// Result.LowerBound is the longest edge of the biconnected spanning graph;
// every Hamiltonian cycle is biconnected, so no tour can do better.
// Result.Ratio is the guarantee actually achieved on the instance.
//
// Invalid input yields sentinel errors (ErrTooFewPoints,
// ErrEndpointOutOfRange, ErrSameEndpoints). A violated internal guarantee
// panics with an error wrapping ErrInvariant; it signals a bug, not bad
// input.
//
// Solves share no state and may run concurrently.
package btsp
