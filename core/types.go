// Package core declares the Vertex, Edge, and Graph types, the HeapItem
// capability, and the NewGraph constructor.
package core

// Vertex is a node of a Graph[K], identified by its key.
//
// A Vertex owns the edges in its adjacency list; entries in incoming are
// non-owning back-references to edges owned by their origin vertices.
// The dist/path/queueIndex fields are per-algorithm scratch shared with
// mutable priority queues; they are not part of vertex identity.
type Vertex[K comparable] struct {
	info     K          // caller-supplied key, unique within the graph
	adj      []*Edge[K] // outgoing edges, insertion order, duplicates allowed
	incoming []*Edge[K] // edges whose destination is this vertex

	// scratch for priority-queue driven algorithms (e.g. mst.Prim)
	dist       float64
	path       *Edge[K]
	queueIndex int
}

// Edge is a directed arc between two vertices of the same Graph[K].
//
// Weight doubles as capacity for flow-style uses; Flow starts at zero.
// Reverse, when set, pairs this arc with its opposite-direction twin so the
// pair models one undirected link.
type Edge[K comparable] struct {
	orig     *Vertex[K] // origin vertex
	dest     *Vertex[K] // destination vertex
	weight   float64
	flow     float64
	selected bool
	reverse  *Edge[K] // non-owning pairing link, nil unless bidirectional
}

// Graph is a directed multigraph over keys of type K.
//
// It keeps two parallel structures: vertexSet preserves insertion order for
// deterministic iteration and positional indexing, and index provides O(1)
// lookup by key. Every public mutation keeps both synchronized.
type Graph[K comparable] struct {
	vertexSet []*Vertex[K]     // insertion order, no duplicate keys
	index     map[K]*Vertex[K] // key → vertex

	// scratch matrices for all-pairs algorithms, allocated on demand
	distMatrix [][]float64
	pathMatrix [][]int
}

// HeapItem is the capability a mutable min-priority queue needs to track an
// element's slot for decrease-key operations. Vertex implements it.
type HeapItem interface {
	// QueueIndex reports the element's current heap slot, or -1 when the
	// element is not in the queue.
	QueueIndex() int

	// SetQueueIndex records the element's heap slot after a swap or removal.
	SetQueueIndex(i int)
}

// NewGraph creates an empty Graph over keys of type K.
// Complexity: O(1)
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{index: make(map[K]*Vertex[K])}
}
