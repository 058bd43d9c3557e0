// Package bfs defines tunable options and the result type for breadth-first
// search over a core.Graph.
package bfs

// Option configures BFS behavior via functional arguments.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize BFS execution.
type Options[K comparable] struct {
	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex key and its hop depth from the source.
	OnEnqueue func(key K, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(key K, depth int)

	// OnVisit is called when a vertex is appended to the visit order.
	OnVisit func(key K, depth int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// Zero disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor K) bool
}

// DefaultOptions returns Options with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnEnqueue:      func(K, int) {},
		OnDequeue:      func(K, int) {},
		OnVisit:        func(K, int) {},
		MaxDepth:       0,
		FilterNeighbor: func(_, _ K) bool { return true },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[K comparable](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[K comparable](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit[K comparable](fn func(key K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
// Non-positive values disable the limit.
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d > 0 {
			o.MaxDepth = d
		} else {
			o.MaxDepth = 0
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[K comparable](fn func(curr, neighbor K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertex keys in visit sequence.
//   - Depth: map from key to hop distance from the source.
//   - Parent: map from key to its predecessor in the BFS tree.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the source→dest path from the parent links.
// The second return is false when dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, bool) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, false
	}
	// walk parent links back to the root, then reverse
	path := []K{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
