// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` with a method tag.
//   • Constructors never panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidParameter indicates a malformed generation request: a vertex
// count below the constructor's minimum, or a regular-graph degree that
// violates 0 ≤ d < n or the n·d parity requirement.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject request */ }.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrInvalidProbability indicates an edge probability outside the closed
// interval [0,1] (Erdős–Rényi generation).
// Usage: if errors.Is(err, ErrInvalidProbability) { /* clamp or reject p */ }.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor resolved its
// configuration without a non-nil *rand.Rand (WithSeed/WithRand missing).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNilConstructor indicates Build received a nil Constructor.
// Usage: if errors.Is(err, ErrNilConstructor) { /* fix call site */ }.
var ErrNilConstructor = errors.New("builder: nil constructor")
