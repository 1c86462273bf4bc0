// Package ear computes ear decompositions and the biconnected spanning
// subgraphs they are taken from.
//
// Schmidt decomposes a connected undirected graph into chains driven by
// one DFS: the first chain is a cycle through the root, every later chain
// is a path whose endpoints already lie on earlier chains. A later chain
// that closes into a cycle, or an edge no chain covers (a bridge), reveals
// an articulation point; the decomposition is then not open.
//
// Around Schmidt sit the graph builders of the approximation:
//
//   - BiconnectedSpanningGraph adds Euclidean edges shortest first until
//     the graph is biconnected and reports the longest edge used, which is
//     a lower bound on the optimal bottleneck value.
//   - EdgeAugmentedBiconnectedSpanningGraph does the same with a fixed
//     virtual edge (s, t) that is always present.
//   - MinimallyBiconnectedSubgraph drops edges one by one as long as the
//     graph stays biconnected.
//
// Complexity:
//   - Schmidt: O(V + E).
//   - BiconnectedSpanningGraph: O(V² log V) for sorting plus
//     O(V² log V) biconnectivity checks in the binary search.
//   - MinimallyBiconnectedSubgraph: O(E·(V + E)) per pass.
package ear
