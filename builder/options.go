// options.go: functional options for the builder package.
//
// Contract:
//   - Options mutate a config resolved once per constructor call.
//   - Option constructors validate and panic on meaningless inputs;
//     the topology constructors themselves never panic.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand.
package builder

import "math/rand"

// Option customizes a constructor by mutating its config before the graph
// is built.
type Option func(*config)

// config is the resolved set of construction knobs.
type config struct {
	directed bool                    // single arcs instead of reverse-paired links
	rng      *rand.Rand              // source for stochastic constructors
	weightFn func(*rand.Rand) float64 // per-link weight generator
}

// defaultConfig returns the baseline: bidirectional links, weight 1, no RNG.
func defaultConfig() config {
	return config{
		weightFn: func(*rand.Rand) float64 { return 1 },
	}
}

// WithDirected makes constructors add single directed arcs instead of
// bidirectional (reverse-paired) links.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed equips the constructor with a deterministically seeded RNG.
// Use it in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-link weight generator. The function
// receives the config's RNG (nil for deterministic constructors).
// Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) { c.weightFn = fn }
}
