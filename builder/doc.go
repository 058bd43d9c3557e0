// Package builder constructs core graphs with well-known deterministic
// topologies: paths, cycles, stars, complete graphs, and seeded sparse
// random networks.
//
// What:
//
//   - Path, Cycle, Star, Complete, RandomSparse: each takes the vertex count,
//     a key generator idx→K, and functional options, and returns a ready
//     core.Graph[K].
//
// Why:
//
//   - Tests, benchmarks, and examples keep rebuilding the same shapes;
//     centralizing them keeps fixtures deterministic and intent obvious.
//
// Conventions:
//
//   - Links are bidirectional (reverse-paired arcs) by default; WithDirected
//     switches constructors to single arcs.
//   - Weights default to 1; override with WithWeightFn.
//   - Stochastic constructors require an explicit RNG (WithSeed or WithRand),
//     otherwise ErrNeedRandSource; no hidden randomness.
//   - Option constructors validate and panic on meaningless inputs;
//     constructors themselves return sentinel errors checked via errors.Is.
package builder
