package core

// Scratch matrices for all-pairs algorithms (e.g. Floyd-Warshall style
// distance/path tables). The graph owns the storage; external algorithms
// fill the cells, addressing them by IndexOf positions.
//
// The matrices are sized |V|×|V| at allocation time. They do not track later
// vertex mutations: when |V| changes the caller releases and reallocates
// before reuse.

// DistMatrix returns the distance scratch matrix, allocating a zeroed
// |V|×|V| table on first use.
func (g *Graph[K]) DistMatrix() [][]float64 {
	if g.distMatrix == nil {
		n := len(g.vertexSet)
		g.distMatrix = make([][]float64, n)
		for i := range g.distMatrix {
			g.distMatrix[i] = make([]float64, n)
		}
	}

	return g.distMatrix
}

// PathMatrix returns the path scratch matrix, allocating a zeroed
// |V|×|V| table on first use.
func (g *Graph[K]) PathMatrix() [][]int {
	if g.pathMatrix == nil {
		n := len(g.vertexSet)
		g.pathMatrix = make([][]int, n)
		for i := range g.pathMatrix {
			g.pathMatrix[i] = make([]int, n)
		}
	}

	return g.pathMatrix
}

// ReleaseMatrices drops both scratch matrices. Safe to call when they were
// never allocated. The next DistMatrix/PathMatrix call reallocates at the
// then-current |V|.
func (g *Graph[K]) ReleaseMatrices() {
	g.distMatrix = nil
	g.pathMatrix = nil
}

// Close tears the graph down: it releases the scratch matrices and every
// vertex, which in turn releases its outgoing edges and cleans destination
// incoming lists. The graph is empty and reusable afterwards.
func (g *Graph[K]) Close() {
	g.ReleaseMatrices()
	for _, v := range g.vertexSet {
		v.removeOutgoingEdges()
	}
	g.vertexSet = nil
	g.index = make(map[K]*Vertex[K])
}
