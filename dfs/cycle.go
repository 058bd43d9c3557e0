package dfs

import "github.com/mvalmeida/routegraph/core"

// IsDAG reports whether g contains no directed cycle.
//
// It runs a three-color DFS over the whole graph: White vertices are
// unvisited, Gray vertices are on the current recursion stack, Black
// vertices are fully explored. An edge into a Gray vertex is a back edge,
// which closes a directed cycle.
//
// Complexity: Time O(V+E), Memory O(V).
func IsDAG[K comparable](g *core.Graph[K]) bool {
	state := make(map[K]int, g.NumVertices())
	for _, v := range g.VertexSet() {
		if state[v.Info()] == White {
			if !visitAcyclic(v, state) {
				return false
			}
		}
	}

	return true
}

// visitAcyclic explores v's subtree, returning false on the first back edge.
func visitAcyclic[K comparable](v *core.Vertex[K], state map[K]int) bool {
	state[v.Info()] = Gray
	for _, e := range v.Adj() {
		dest := e.Dest()
		switch state[dest.Info()] {
		case Gray:
			return false
		case White:
			if !visitAcyclic(dest, state) {
				return false
			}
		}
	}
	state[v.Info()] = Black

	return true
}
