// Package dfs defines visitation states, options, and the result type for
// depth-first traversal.
package dfs

// Visitation state of a vertex during DFS-based algorithms.
const (
	White = iota // not visited yet
	Gray         // in the recursion stack
	Black        // fully explored
)

// Option configures optional behavior of DFS traversal.
type Option[K comparable] func(*Options[K])

// Options holds configurable parameters for DFS traversal: hooks, depth
// limiting, and neighbor filtering. Complexity stays O(V+E) when hooks and
// filters are O(1).
type Options[K comparable] struct {
	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	OnVisit func(key K)

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order).
	OnExit func(key K)

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the root. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor key before
	// recursing. Return false to skip that neighbor.
	FilterNeighbor func(key K) bool
}

// DefaultOptions returns Options with no hooks, no depth limit, and no
// neighbor filtering.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{MaxDepth: -1}
}

// WithOnVisit installs fn as the pre-order hook.
func WithOnVisit[K comparable](fn func(key K)) Option[K] {
	return func(o *Options[K]) { o.OnVisit = fn }
}

// WithOnExit installs fn as the post-order hook.
func WithOnExit[K comparable](fn func(key K)) Option[K] {
	return func(o *Options[K]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the root;
// negative values disable the limit.
func WithMaxDepth[K comparable](limit int) Option[K] {
	return func(o *Options[K]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[K comparable](fn func(key K) bool) Option[K] {
	return func(o *Options[K]) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a depth-first traversal.
type Result[K comparable] struct {
	// Order records vertex keys in discovery (pre-order) sequence.
	Order []K

	// Depth maps each visited key to its distance in edges from its root.
	Depth map[K]int

	// Parent maps each visited key to the key it was discovered from.
	// Roots do not appear.
	Parent map[K]K
}
