package bfs

import "github.com/mvalmeida/routegraph/core"

// queueItem pairs a vertex with its BFS depth.
type queueItem[K comparable] struct {
	vertex *core.Vertex[K]
	depth  int
}

// walker encapsulates mutable BFS state for one invocation.
type walker[K comparable] struct {
	opts  Options[K]
	queue []queueItem[K]
	seen  map[K]bool
	res   *Result[K]
}

// BFS runs breadth-first search on g from source, applying any number of
// functional Options. Each reachable vertex appears exactly once in
// Result.Order, in non-decreasing hop distance; neighbors are enqueued in
// adjacency insertion order. An absent source yields an empty Result.
func BFS[K comparable](g *core.Graph[K], source K, opts ...Option[K]) *Result[K] {
	// 1. Resolve options.
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Prepare the walker with capacity hints.
	n := g.NumVertices()
	w := &walker[K]{
		opts:  o,
		queue: make([]queueItem[K], 0, n),
		seen:  make(map[K]bool, n),
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}

	// 3. Seed with the source vertex, if it exists.
	s := g.FindVertex(source)
	if s == nil {
		return w.res
	}
	w.seen[source] = true
	w.res.Depth[source] = 0
	w.opts.OnEnqueue(source, 0)
	w.queue = append(w.queue, queueItem[K]{vertex: s, depth: 0})

	// 4. Standard FIFO loop.
	w.loop()

	return w.res
}

// loop processes the queue until empty.
func (w *walker[K]) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		key := item.vertex.Info()
		w.opts.OnDequeue(key, item.depth)

		w.res.Order = append(w.res.Order, key)
		w.opts.OnVisit(key, item.depth)

		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor of item in adjacency insertion order.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) {
	curr := item.vertex.Info()
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range item.vertex.Adj() {
		dest := e.Dest()
		nbr := dest.Info()
		if !w.opts.FilterNeighbor(curr, nbr) {
			continue
		}
		if w.seen[nbr] {
			continue
		}
		w.seen[nbr] = true
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = curr
		w.opts.OnEnqueue(nbr, next)
		w.queue = append(w.queue, queueItem[K]{vertex: dest, depth: next})
	}
}
