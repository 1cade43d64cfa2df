// Package: eqcolor/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "<Method>: n=... : <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, k, size)
// is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor or WithShuffle
// needs an RNG (WithSeed/WithRand) that was not supplied.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the assembled edge set could not be
// turned into a graph, or a nil constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
