// Package euler turns an open ear decomposition into a Hamiltonian cycle of
// the square of the decomposed graph.
//
// Pipeline (HamiltonCycle):
//
//  1. NewGraphPair: orient every ear and double edges at odd-degree
//     inner nodes, processing ears from the last to the first so that each
//     parity defect is pushed onto an earlier ear and finally onto the
//     root. The result is an Eulerian multigraph plus a digraph whose arcs
//     tell which node visits may later be skipped.
//  2. ReduceToGminus: contract every node of in-degree two into an edge
//     between its two in-neighbours (the node cuts).
//  3. EulerTour: Hierholzer's algorithm on the contracted multigraph.
//  4. Cut insertion (longTour): splice each cut node back between two tour
//     neighbours that both point to it. Contraction may disconnect G-; the
//     Euler tour of each further component is hung onto the first visit of
//     one of its nodes, alternating with cut insertion until both settle.
//     Leftover cuts fail the tour instead of panicking; the exported
//     InsertNodeCuts, which panics, is not used here.
//  5. Shortcut: drop a visit of w between u and v whenever w points
//     to both, so every node is visited once.
//
// The greedy shortcut does not always reach a permutation. The long tour
// is then searched for one visit per node with a bounded keep/skip search.
// Failing that, the first visits of the shortcut walk are repaired by 2-opt
// moves until every consecutive pair is adjacent in the square, and as a
// last resort the square is searched by Pósa rotation-extension. All three
// use fixed seeds and budgets linear in the input, so a miss is cheap and
// reproducible. ErrNoCycle is returned only if all of them give up.
//
// Consecutive nodes of the result are at distance one or two in the
// original graph, so a bottleneck bound b on the graph gives 2b on the tour.
//
// Internal consistency failures are programming errors and panic with an
// error wrapping ErrInvariant.
package euler
