package dfs

import "github.com/mvalmeida/routegraph/core"

// walker encapsulates per-invocation DFS state. Visitation bookkeeping lives
// here, not on the vertices, so traversals never interfere with one another.
type walker[K comparable] struct {
	opts Options[K]
	seen map[K]bool
	res  *Result[K]
}

// DFS performs a pre-order forest traversal of g: it runs a depth-first
// traversal rooted at each vertex in insertion order, skipping vertices an
// earlier tree already reached, so every vertex appears exactly once in
// Result.Order.
func DFS[K comparable](g *core.Graph[K], opts ...Option[K]) *Result[K] {
	w := newWalker(g, opts)
	for _, v := range g.VertexSet() {
		if !w.seen[v.Info()] {
			w.traverse(v, 0)
		}
	}

	return w.res
}

// DFSFrom performs a pre-order traversal of the tree rooted at source,
// following adjacency in insertion order. An absent source yields an empty
// Result.
func DFSFrom[K comparable](g *core.Graph[K], source K, opts ...Option[K]) *Result[K] {
	w := newWalker(g, opts)
	if s := g.FindVertex(source); s != nil {
		w.traverse(s, 0)
	}

	return w.res
}

func newWalker[K comparable](g *core.Graph[K], opts []Option[K]) *walker[K] {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.NumVertices()

	return &walker[K]{
		opts: o,
		seen: make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}
}

// traverse visits v at the given depth and recurses into unvisited
// neighbors in adjacency insertion order.
func (w *walker[K]) traverse(v *core.Vertex[K], depth int) {
	key := v.Info()
	w.seen[key] = true
	w.res.Depth[key] = depth
	w.res.Order = append(w.res.Order, key)
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(key)
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, e := range v.Adj() {
			dest := e.Dest()
			nbr := dest.Info()
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				continue
			}
			if !w.seen[nbr] {
				w.res.Parent[nbr] = key
				w.traverse(dest, depth+1)
			}
		}
	}

	if w.opts.OnExit != nil {
		w.opts.OnExit(key)
	}
}
