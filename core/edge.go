package core

// Orig returns the origin vertex of the edge.
func (e *Edge[K]) Orig() *Vertex[K] { return e.orig }

// Dest returns the destination vertex of the edge.
func (e *Edge[K]) Dest() *Vertex[K] { return e.dest }

// Weight returns the edge weight; for flow-style uses it is the capacity.
func (e *Edge[K]) Weight() float64 { return e.weight }

// Flow returns the current flow on the edge. Flow starts at zero.
func (e *Edge[K]) Flow() float64 { return e.flow }

// SetFlow sets the current flow on the edge.
func (e *Edge[K]) SetFlow(flow float64) { e.flow = flow }

// Selected reports whether the edge has been marked by an algorithm
// (e.g. mst.Prim marks the arcs it picks).
func (e *Edge[K]) Selected() bool { return e.selected }

// SetSelected marks or unmarks the edge.
func (e *Edge[K]) SetSelected(selected bool) { e.selected = selected }

// Reverse returns the paired opposite-direction edge, or nil when this arc
// is not part of a bidirectional pair.
func (e *Edge[K]) Reverse() *Edge[K] { return e.reverse }

// SetReverse pairs the edge with its opposite-direction twin.
// Graph.AddBidirectionalEdge calls it on both arcs of the pair; callers
// pairing edges by hand must do the same to keep the link symmetric.
func (e *Edge[K]) SetReverse(reverse *Edge[K]) { e.reverse = reverse }
