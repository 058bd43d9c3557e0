package core

// Info returns the vertex key.
func (v *Vertex[K]) Info() K { return v.info }

// Adj returns a snapshot of the outgoing edges in insertion order.
// Mutating the returned slice does not affect the vertex.
func (v *Vertex[K]) Adj() []*Edge[K] {
	return append([]*Edge[K](nil), v.adj...)
}

// Incoming returns a snapshot of the edges whose destination is this vertex.
// Mutating the returned slice does not affect the vertex.
func (v *Vertex[K]) Incoming() []*Edge[K] {
	return append([]*Edge[K](nil), v.incoming...)
}

// OutDegree reports the number of outgoing edges.
func (v *Vertex[K]) OutDegree() int { return len(v.adj) }

// InDegree reports the number of incoming edges.
func (v *Vertex[K]) InDegree() int { return len(v.incoming) }

// Dist returns the vertex's scratch distance. Meaningful only during a single
// algorithm invocation; algorithms set it before reading.
func (v *Vertex[K]) Dist() float64 { return v.dist }

// SetDist sets the vertex's scratch distance.
func (v *Vertex[K]) SetDist(dist float64) { v.dist = dist }

// Path returns the scratch back-pointer to the edge this vertex was reached
// through, or nil.
func (v *Vertex[K]) Path() *Edge[K] { return v.path }

// SetPath sets the scratch back-pointer edge.
func (v *Vertex[K]) SetPath(path *Edge[K]) { v.path = path }

// Less orders vertices by scratch distance, strict less-than only.
// Mutable priority queues key their heap property on it.
func (v *Vertex[K]) Less(other *Vertex[K]) bool { return v.dist < other.dist }

// QueueIndex reports the vertex's current heap slot. Part of HeapItem.
func (v *Vertex[K]) QueueIndex() int { return v.queueIndex }

// SetQueueIndex records the vertex's heap slot. Part of HeapItem.
func (v *Vertex[K]) SetQueueIndex(i int) { v.queueIndex = i }

// addEdge appends a new edge v→dest to v's adjacency list and to
// dest's incoming list, returning the new edge. Duplicates are allowed.
// Complexity: O(1) amortized.
func (v *Vertex[K]) addEdge(dest *Vertex[K], weight float64) *Edge[K] {
	e := &Edge[K]{orig: v, dest: dest, weight: weight}
	v.adj = append(v.adj, e)
	dest.incoming = append(dest.incoming, e)

	return e
}

// removeEdge removes every outgoing edge whose destination key equals key,
// detaching each from its destination's incoming list.
// Returns true iff at least one edge was removed.
func (v *Vertex[K]) removeEdge(key K) bool {
	removed := false
	kept := v.adj[:0]
	for _, e := range v.adj {
		if e.dest.info == key {
			v.releaseEdge(e)
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	// nil out the tail so released edges are not retained by the backing array
	for i := len(kept); i < len(v.adj); i++ {
		v.adj[i] = nil
	}
	v.adj = kept

	return removed
}

// removeOutgoingEdges removes every outgoing edge, keeping the incoming
// lists of all destinations consistent.
func (v *Vertex[K]) removeOutgoingEdges() {
	for _, e := range v.adj {
		v.releaseEdge(e)
	}
	v.adj = nil
}

// releaseEdge detaches e from its destination's incoming list and unlinks
// its reverse pairing, so the dropped edge holds no live references.
func (v *Vertex[K]) releaseEdge(e *Edge[K]) {
	dest := e.dest
	kept := dest.incoming[:0]
	for _, in := range dest.incoming {
		if in != e {
			kept = append(kept, in)
		}
	}
	for i := len(kept); i < len(dest.incoming); i++ {
		dest.incoming[i] = nil
	}
	dest.incoming = kept

	if e.reverse != nil {
		e.reverse.reverse = nil
		e.reverse = nil
	}
}
