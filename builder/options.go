// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     graph constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "math/rand"

// Option customizes a constructor run by mutating a builderConfig
// instance before graph construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithCenter sets the center of the initial node placement circle.
func WithCenter(x, y float64) Option {
	return func(c *builderConfig) { c.center.X, c.center.Y = x, y }
}

// WithRadius sets the radius of the initial node placement circle.
// Panics if r <= 0 to avoid degenerate, fully-coincident placements.
func WithRadius(r float64) Option {
	if r <= 0 {
		panic("builder: WithRadius(r<=0)")
	}

	return func(c *builderConfig) { c.radius = r }
}
