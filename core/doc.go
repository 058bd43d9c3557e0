// Package core defines the central Graph, Vertex, and Edge types used by the
// rest of routegraph: a generic, in-memory, directed multigraph keyed by any
// comparable type K.
//
// What:
//
//   - Vertex[K]: owns its outgoing edges, tracks incoming edges, and carries
//     the per-vertex fields (dist, path, queueIndex) shared with mutable
//     priority queues.
//   - Edge[K]: a directed arc with float64 weight, flow, a selection flag, and
//     an optional pairing to a reverse arc for bidirectional modelling.
//   - Graph[K]: the vertex set in insertion order plus a key→vertex index for
//     O(1) lookup, the CRUD surface, and the lazily allocated scratch matrices
//     reserved for all-pairs algorithms.
//
// Why:
//
//   - Route-planning and network-analysis tooling needs one consistent graph
//     container under its loaders, scenario drivers, and algorithm packages
//     (bfs, dfs, mst, tsp).
//
// Failure policy:
//
//   - The core is infallible: missing vertices or edges are reported as false
//     booleans, nil handles, empty sequences, or the +Inf weight sentinel.
//     No operation leaves a partial mutation behind.
//
// Concurrency:
//
//   - None. The graph is an exclusive-writer resource; callers serialize all
//     mutations and never run an algorithm concurrently with one.
//
// Complexity:
//
//   - AddVertex / FindVertex / AddEdge: O(1) expected.
//   - RemoveVertex: O(V + E).
//   - RemoveEdge / EdgeWeight: O(deg(src)).
package core
