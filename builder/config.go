// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil                 (pure/deterministic unless seeded)
//   • center  = (200, 200)
//   • radius  = 150

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Center of the initial placement circle.
	center r2.Vec
	// Radius of the initial placement circle (> 0).
	radius float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultCenterX = 200.0
	defaultCenterY = 200.0
	defaultRadius  = 150.0
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:    nil,
		center: r2.Vec{X: defaultCenterX, Y: defaultCenterY},
		radius: defaultRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
