// Package mst computes spanning trees of a core.Graph built from
// bidirectional (reverse-paired) edges.
//
// What:
//
//   - KruskalFrom(g, source): the source-rooted greedy sweep: edges whose
//     origin is source are tried first, the rest in ascending weight, and only
//     the edges that end up in source's component are returned. The biased
//     comparator is not monotone, so the result is a spanning tree of
//     source's component grown greedily from source, not necessarily a
//     globally minimum one.
//   - MinimumSpanningForest(g): classical Kruskal, an ascending-weight sweep
//     over all edges with a union-find, yielding a minimum spanning forest
//     and its total weight.
//   - Prim(g, root): grows a minimum spanning tree of root's component
//     outward from root, using the vertices' dist/path scratch and a mutable
//     min-heap with decrease-key through the queue-index capability.
//
// Why:
//
//   - Spanning backbones are how route planners extract a cheap connected
//     skeleton from a dense network before layering service constraints on it.
//
// Failure policy:
//
//   - Infallible: an absent source/root yields an empty edge sequence.
//     Results are value copies of the chosen edges.
//
// Complexity:
//
//   - KruskalFrom / MinimumSpanningForest: Time O(E log E + α(V)·E), Memory O(V+E).
//   - Prim: Time O(E log V), Memory O(V).
package mst
