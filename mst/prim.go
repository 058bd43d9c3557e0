package mst

import (
	"container/heap"
	"math"

	"github.com/mvalmeida/routegraph/core"
)

// Prim grows a minimum spanning tree of root's component outward from root.
//
// Every vertex starts at dist +Inf with no path edge; root starts at 0. All
// vertices go into a mutable min-heap keyed on dist. Popping the cheapest
// vertex fixes its path edge into the tree, then each outgoing arc to a
// vertex still in the heap relaxes that vertex's dist with a decrease-key.
// Chosen arcs are marked Selected.
//
// Vertices unreachable from root keep dist +Inf and are left out; an absent
// root yields an empty sequence. Intended for graphs whose links were added
// with AddBidirectionalEdge, so every undirected link is reachable both ways.
//
// Complexity: Time O(E log V), Memory O(V).
func Prim[K comparable](g *core.Graph[K], root K) ([]core.Edge[K], float64) {
	r := g.FindVertex(root)
	if r == nil {
		return []core.Edge[K]{}, 0
	}

	// 1. Reset the scratch this algorithm reads.
	vertices := g.VertexSet()
	for _, v := range vertices {
		v.SetDist(math.Inf(1))
		v.SetPath(nil)
		v.SetQueueIndex(-1)
	}
	r.SetDist(0)

	// 2. Heap all vertices; root surfaces first.
	h := make(vertexHeap[K], 0, len(vertices))
	for _, v := range vertices {
		heap.Push(&h, v)
	}

	// 3. Extract-min and relax until only unreachable vertices remain.
	tree := make([]core.Edge[K], 0, max(len(vertices)-1, 0))
	var total float64
	for h.Len() > 0 {
		v := heap.Pop(&h).(*core.Vertex[K])
		if math.IsInf(v.Dist(), 1) {
			break
		}
		if e := v.Path(); e != nil {
			e.SetSelected(true)
			tree = append(tree, *e)
			total += e.Weight()
		}
		for _, e := range v.Adj() {
			dest := e.Dest()
			// queueIndex >= 0 means dest is still outside the tree
			if dest.QueueIndex() >= 0 && e.Weight() < dest.Dist() {
				dest.SetDist(e.Weight())
				dest.SetPath(e)
				heap.Fix(&h, dest.QueueIndex())
			}
		}
	}

	return tree, total
}

// vertexHeap is a mutable min-heap of vertices ordered by Vertex.Less
// (scratch dist). Swaps keep each vertex's queue index current so relaxation
// can heap.Fix a vertex in place; popped vertices get index -1.
type vertexHeap[K comparable] []*core.Vertex[K]

func (h vertexHeap[K]) Len() int { return len(h) }

func (h vertexHeap[K]) Less(i, j int) bool { return h[i].Less(h[j]) }

func (h vertexHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].SetQueueIndex(i)
	h[j].SetQueueIndex(j)
}

func (h *vertexHeap[K]) Push(x any) {
	v := x.(*core.Vertex[K])
	v.SetQueueIndex(len(*h))
	*h = append(*h, v)
}

func (h *vertexHeap[K]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	old[n-1] = nil
	v.SetQueueIndex(-1)
	*h = old[:n-1]

	return v
}
