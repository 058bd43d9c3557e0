package core

import "math"

// NumVertices returns the number of vertices in the graph.
func (g *Graph[K]) NumVertices() int { return len(g.vertexSet) }

// VertexSet returns a snapshot of the vertex handles in insertion order.
// Mutating the returned slice does not affect the graph.
func (g *Graph[K]) VertexSet() []*Vertex[K] {
	return append([]*Vertex[K](nil), g.vertexSet...)
}

// Keys returns the vertex keys in insertion order.
func (g *Graph[K]) Keys() []K {
	keys := make([]K, len(g.vertexSet))
	for i, v := range g.vertexSet {
		keys[i] = v.info
	}

	return keys
}

// FindVertex returns the vertex with the given key, or nil when absent.
// Complexity: O(1) expected.
func (g *Graph[K]) FindVertex(key K) *Vertex[K] {
	if v, ok := g.index[key]; ok {
		return v
	}

	return nil
}

// HasVertex reports whether a vertex with the given key exists.
func (g *Graph[K]) HasVertex(key K) bool {
	_, ok := g.index[key]

	return ok
}

// IndexOf returns the position of the vertex with the given key in insertion
// order, or -1 when absent. Positional indexing is what the scratch matrices
// (DistMatrix, PathMatrix) are addressed by.
// Complexity: O(V).
func (g *Graph[K]) IndexOf(key K) int {
	for i, v := range g.vertexSet {
		if v.info == key {
			return i
		}
	}

	return -1
}

// AddVertex inserts a new vertex with the given key.
// Returns false, leaving the graph unchanged, when the key is already present.
// Complexity: O(1) expected.
func (g *Graph[K]) AddVertex(key K) bool {
	if _, ok := g.index[key]; ok {
		return false
	}
	v := &Vertex[K]{info: key}
	g.vertexSet = append(g.vertexSet, v)
	g.index[key] = v

	return true
}

// RemoveVertex removes the vertex with the given key, all of its outgoing
// edges, and every edge from any other vertex targeting it.
// Returns false iff the key is absent.
// Complexity: O(V + E).
func (g *Graph[K]) RemoveVertex(key K) bool {
	v, ok := g.index[key]
	if !ok {
		return false
	}
	// Drop edges in both directions: edges into v live in other vertices'
	// adjacency lists, edges out of v are owned by v itself.
	for _, u := range g.vertexSet {
		if u != v {
			u.removeEdge(key)
		} else {
			u.removeOutgoingEdges()
		}
	}
	for i, u := range g.vertexSet {
		if u == v {
			g.vertexSet = append(g.vertexSet[:i], g.vertexSet[i+1:]...)
			break
		}
	}
	delete(g.index, key)

	return true
}

// AddEdge appends one directed edge src→dst with the given weight.
// Duplicates are allowed (multigraph). Returns false when either endpoint
// is missing.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(src, dst K, weight float64) bool {
	v1 := g.FindVertex(src)
	v2 := g.FindVertex(dst)
	if v1 == nil || v2 == nil {
		return false
	}
	v1.addEdge(v2, weight)

	return true
}

// AddBidirectionalEdge adds src→dst and dst→src with the given weight and
// pairs each arc as the reverse of the other, modelling one undirected link.
// Returns false when either endpoint is missing.
func (g *Graph[K]) AddBidirectionalEdge(src, dst K, weight float64) bool {
	v1 := g.FindVertex(src)
	v2 := g.FindVertex(dst)
	if v1 == nil || v2 == nil {
		return false
	}
	e1 := v1.addEdge(v2, weight)
	e2 := v2.addEdge(v1, weight)
	e1.SetReverse(e2)
	e2.SetReverse(e1)

	return true
}

// RemoveEdge removes every edge src→dst.
// Returns false when src is missing or no such edge exists.
// Complexity: O(deg(src) + deg(dst)).
func (g *Graph[K]) RemoveEdge(src, dst K) bool {
	v := g.FindVertex(src)
	if v == nil {
		return false
	}

	return v.removeEdge(dst)
}

// EdgeWeight returns the weight of the first edge src→dst in adjacency
// insertion order. When src is absent or no such edge exists it returns the
// +Inf sentinel, so math.IsInf(w, 1) distinguishes absence from any real
// weight.
// Complexity: O(deg(src)).
func (g *Graph[K]) EdgeWeight(src, dst K) float64 {
	v := g.FindVertex(src)
	if v == nil {
		return math.Inf(1)
	}
	for _, e := range v.adj {
		if e.dest.info == dst {
			return e.weight
		}
	}

	return math.Inf(1)
}
