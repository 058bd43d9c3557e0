// Package routegraph is an in-memory toolkit for building and analyzing
// directed graphs, written as the data-structures core under route-planning
// and network-analysis tooling.
//
// What is routegraph?
//
//	A generic graph container plus the classical algorithms drivers keep
//	reaching for:
//		• Core primitives: vertices & edges over any comparable key type,
//		  bidirectional (reverse-paired) links, O(1) key lookup
//		• Traversals: BFS, DFS (forest and from-source)
//		• Orders: DAG check, topological sort
//		• Spanning trees: Kruskal (classical and source-rooted), Prim
//		• Exact tours: backtracking TSP baseline
//		• Fixture builders: paths, cycles, stars, complete & random networks
//
// Everything is organized under small focused subpackages:
//
//	core/    — Graph, Vertex, Edge types, key index, scratch matrices
//	bfs/     — level-order traversal with hooks and depth limits
//	dfs/     — pre-order traversal, IsDAG, TopologicalSort
//	mst/     — KruskalFrom, MinimumSpanningForest, Prim
//	tsp/     — exact backtracking tour search
//	builder/ — deterministic graph constructors for tests and benchmarks
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.NewGraph[string]()
//	for _, k := range []string{"A", "B", "C", "D"} {
//		g.AddVertex(k)
//	}
//	g.AddBidirectionalEdge("A", "B", 1)
//	g.AddBidirectionalEdge("A", "C", 2)
//	g.AddBidirectionalEdge("B", "D", 3)
//	g.AddBidirectionalEdge("C", "D", 4)
//	order := bfs.BFS(g, "A").Order // [A B C D]
//
// The core is single-threaded by design: callers serialize mutations and
// never run an algorithm concurrently with one.
package routegraph
