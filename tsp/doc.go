// Package tsp provides an exact backtracking solver for the travelling
// salesman problem over a core.Graph.
//
// What:
//
//   - Backtracking(g, start): depth-first enumeration of Hamiltonian cycles
//     from start, following adjacency and pruning any partial route already
//     longer than the best complete tour found.
//
// Why:
//
//   - Scenario drivers use it as the exact baseline when scoring heuristic
//     routes on small networks.
//
// Failure policy:
//
//   - Infallible: an absent start, or a graph with no Hamiltonian cycle,
//     yields a nil route and a +Inf length.
//
// Complexity:
//
//   - Time O(V!), pruned in practice; Memory O(V). Only suitable for small
//     vertex counts.
package tsp
