package builder

import (
	"fmt"

	"github.com/mvalmeida/routegraph/core"
)

// Path builds a path v0-v1-...-v(n-1). Needs n ≥ 1.
func Path[K comparable](n int, key func(int) K, opts ...Option) (*core.Graph[K], error) {
	c, g, err := seed(n, 1, key, opts)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		link(g, &c, key(i-1), key(i))
	}

	return g, nil
}

// Cycle builds a closed ring v0-v1-...-v(n-1)-v0. Needs n ≥ 3.
func Cycle[K comparable](n int, key func(int) K, opts ...Option) (*core.Graph[K], error) {
	c, g, err := seed(n, 3, key, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		link(g, &c, key(i), key((i+1)%n))
	}

	return g, nil
}

// Star builds a hub v0 linked to n-1 leaves. Needs n ≥ 2.
func Star[K comparable](n int, key func(int) K, opts ...Option) (*core.Graph[K], error) {
	c, g, err := seed(n, 2, key, opts)
	if err != nil {
		return nil, err
	}
	hub := key(0)
	for i := 1; i < n; i++ {
		link(g, &c, hub, key(i))
	}

	return g, nil
}

// Complete builds K_n: every pair of distinct vertices linked. Needs n ≥ 1.
func Complete[K comparable](n int, key func(int) K, opts ...Option) (*core.Graph[K], error) {
	c, g, err := seed(n, 1, key, opts)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			link(g, &c, key(i), key(j))
		}
	}

	return g, nil
}

// RandomSparse builds a connected sparse network: a spine path guarantees
// connectivity, then extra random non-loop links are layered on top.
// Stochastic, so an RNG is mandatory (WithSeed or WithRand). Needs n ≥ 2.
func RandomSparse[K comparable](n, extra int, key func(int) K, opts ...Option) (*core.Graph[K], error) {
	c, g, err := seed(n, 2, key, opts)
	if err != nil {
		return nil, err
	}
	if c.rng == nil {
		return nil, fmt.Errorf("%w: RandomSparse is stochastic", ErrNeedRandSource)
	}
	for i := 1; i < n; i++ {
		link(g, &c, key(i-1), key(i))
	}
	for added := 0; added < extra; {
		u := c.rng.Intn(n)
		v := c.rng.Intn(n)
		if u == v {
			continue
		}
		link(g, &c, key(u), key(v))
		added++
	}

	return g, nil
}

// seed resolves options, validates parameters, and populates the vertex set.
func seed[K comparable](n, minN int, key func(int) K, opts []Option) (config, *core.Graph[K], error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if key == nil {
		return c, nil, ErrNilKeyFn
	}
	if n < minN {
		return c, nil, fmt.Errorf("%w: need at least %d vertices, got %d", ErrTooFewVertices, minN, n)
	}
	g := core.NewGraph[K]()
	for i := 0; i < n; i++ {
		if !g.AddVertex(key(i)) {
			return c, nil, fmt.Errorf("%w: index %d", ErrDuplicateKey, i)
		}
	}

	return c, g, nil
}

// link adds one weighted connection u-v honoring the directedness knob.
func link[K comparable](g *core.Graph[K], c *config, u, v K) {
	w := c.weightFn(c.rng)
	if c.directed {
		g.AddEdge(u, v, w)
	} else {
		g.AddBidirectionalEdge(u, v, w)
	}
}
