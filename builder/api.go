// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   • One orchestrator: Build(bopts, cons...). Creates g, resolves cfg,
//     runs constructors in order.
//   • Topology factories (Complete/ErdosRenyi/RandomRegular) are declared
//     in impl_*.go files; api.go additionally exposes one-shot helpers
//     returning a finished graph.
//   • Functional options (Option) resolve into an immutable builderConfig.
//   • Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   • Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/varcut/varcut/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   • Validate parameters early and return sentinel errors (no panics).
//   • Add nodes in ascending index order on the placement circle.
//   • Emit edges in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor
// error is wrapped with "Build: %w" and returned immediately; no
// partial cleanup is attempted by design.
//
// Complexity: O(len(bopts)) resolution + Σ constructor cost.
func Build(bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			// Wrap once at the API boundary; inner layers already tagged
			// the error with their method name.
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// CompleteGraph is a one-shot helper: Build with a single Complete(n).
func CompleteGraph(n int, opts ...Option) (*core.Graph, error) {
	return Build(opts, Complete(n))
}

// ErdosRenyiGraph is a one-shot helper: Build with a single ErdosRenyi(n, p).
func ErdosRenyiGraph(n int, p float64, opts ...Option) (*core.Graph, error) {
	return Build(opts, ErdosRenyi(n, p))
}

// RandomRegularGraph is a one-shot helper: Build with a single RandomRegular(n, d).
func RandomRegularGraph(n, d int, opts ...Option) (*core.Graph, error) {
	return Build(opts, RandomRegular(n, d))
}

// placeOnCircle adds n nodes to g, evenly spaced on the configured
// circle by node index. Shared by every topology constructor so the
// layout solver always starts from the same neutral arrangement.
// Complexity: O(n).
func placeOnCircle(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		g.AddNode(r2.Vec{
			X: cfg.center.X + cfg.radius*math.Cos(angle),
			Y: cfg.center.Y + cfg.radius*math.Sin(angle),
		})
	}
}
