// errors.go: sentinel errors for the builder package. Callers branch with
// errors.Is; constructors may wrap these with %w to attach parameters.
package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum the requested topology needs (e.g. a cycle of two vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilKeyFn indicates that no idx→key generator was supplied.
var ErrNilKeyFn = errors.New("builder: key function is nil")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without an RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDuplicateKey indicates that the key generator produced the same key for
// two distinct indices, which would collapse vertices.
var ErrDuplicateKey = errors.New("builder: key function is not injective")
