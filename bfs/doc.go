// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order.
//
// What:
//
//   - BFS(g, source, opts...): level-order traversal from source using a FIFO
//     queue. Each reachable vertex is emitted exactly once, children enqueued
//     in adjacency insertion order, so the visit order is deterministic.
//
// Why:
//
//   - Hop-count reachability and unweighted shortest paths are the first
//     questions network-analysis drivers ask of a graph.
//
// Key types:
//
//   - Option / Options: hooks (OnEnqueue, OnDequeue, OnVisit), depth limiting,
//     and neighbor filtering via functional options.
//   - Result[K]: Order, Depth, Parent, plus PathTo reconstruction.
//
// Failure policy:
//
//   - Infallible: an absent source yields an empty Result.
//
// Complexity:
//
//   - Time O(V + E), Memory O(V).
package bfs
