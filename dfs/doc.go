// Package dfs implements depth-first traversal, acyclicity checking, and
// topological sorting over a core.Graph.
//
// What:
//
//   - DFS(g, opts...): pre-order forest traversal, restarting from each
//     unvisited vertex in insertion order, covering every vertex exactly once.
//   - DFSFrom(g, source, opts...): pre-order traversal of the tree rooted at
//     source, following adjacency in insertion order.
//   - IsDAG(g): three-color (White/Gray/Black) DFS; a back edge into a Gray
//     vertex means a directed cycle.
//   - TopologicalSort(g): Kahn's algorithm over a FIFO queue seeded in
//     insertion order; returns an empty sequence when the graph is cyclic.
//
// Why:
//
//   - Dependency ordering and cycle screening are the preconditions every
//     scheduling or route-staging driver checks before trusting a network.
//
// Failure policy:
//
//   - Infallible: an absent source yields an empty Result; a cyclic graph
//     yields false / an empty order.
//
// Complexity:
//
//   - All operations: Time O(V + E), Memory O(V).
package dfs
