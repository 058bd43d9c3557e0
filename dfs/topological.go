package dfs

import "github.com/mvalmeida/routegraph/core"

// TopologicalSort computes a linear ordering of all vertices of g such that
// for every directed edge u→v, u appears before v.
//
// It is Kahn's algorithm: compute indegrees, enqueue every indegree-0 vertex
// in insertion order, then repeatedly dequeue, emit, and decrement successor
// indegrees, enqueuing any that reach zero. The FIFO queue makes tie-breaking
// deterministic given insertion order.
//
// When g contains a cycle fewer than |V| vertices get emitted; the order is
// discarded and an empty sequence returned.
//
// Complexity: Time O(V+E), Memory O(V).
func TopologicalSort[K comparable](g *core.Graph[K]) []K {
	vertices := g.VertexSet()
	n := len(vertices)

	// 1. Indegrees from a clean slate; scratch never survives invocations.
	indegree := make(map[K]int, n)
	for _, v := range vertices {
		for _, e := range v.Adj() {
			indegree[e.Dest().Info()]++
		}
	}

	// 2. Seed the FIFO queue with indegree-0 vertices in insertion order.
	queue := make([]*core.Vertex[K], 0, n)
	for _, v := range vertices {
		if indegree[v.Info()] == 0 {
			queue = append(queue, v)
		}
	}

	// 3. Dequeue, emit, decrement successors.
	order := make([]K, 0, n)
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v.Info())
		for _, e := range v.Adj() {
			dest := e.Dest()
			indegree[dest.Info()]--
			if indegree[dest.Info()] == 0 {
				queue = append(queue, dest)
			}
		}
	}

	// 4. A shortfall means a cycle kept some vertices above indegree 0.
	if len(order) != n {
		return []K{}
	}

	return order
}
