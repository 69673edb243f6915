// SPDX-License-Identifier: MIT
// Package: isomatch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Implementations attach context with %w ("<Method>: ...: %w").
//   • Constructors never panic; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols, degree)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempts
// (e.g. stub matching in RandomRegular) or was handed a nil constructor/graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a constructor argument outside its enumerated
// domain, such as an unknown PlatonicName.
var ErrOptionViolation = errors.New("builder: option violation")
