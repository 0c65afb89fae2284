// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// impl_erdos_renyi.go — implementation of ErdosRenyi(n, p) constructor.
//
// Canonical model:
//   • G(n, p): include each unordered pair {i,j}, i<j, independently
//     with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidParameter).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     the degenerate p ∈ {0,1} cases are fully deterministic.
//   • Adds nodes 0..n-1 on the placement circle in ascending order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   • Stable trial order (i asc, then j asc) ⇒ identical edge sets for a
//     fixed seed.

package builder

import (
	"fmt"

	"github.com/varcut/varcut/core"
)

// File-local constants (no magic literals; stable method tag and domain).
const (
	methodErdosRenyi   = "ErdosRenyi"
	minErdosRenyiNodes = 1
	probMin            = 0.0
	probMax            = 1.0
)

// ErdosRenyi returns a Constructor that samples G(n, p).
func ErdosRenyi(n int, p float64) Constructor {
	// The returned closure captures (n, p); Build supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects).
		if n < minErdosRenyiNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodErdosRenyi, n, minErdosRenyiNodes, ErrInvalidParameter)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodErdosRenyi, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for true stochastic sampling (0 < p < 1).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodErdosRenyi, ErrNeedRandSource)
		}

		// 2) Place all vertices deterministically on the circle.
		placeOnCircle(g, cfg, n)

		// 3) One Bernoulli trial per unordered pair, stable (i,j) order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					// Never include: nothing to do.
					continue
				case p == probMax:
					// Always include: deterministic complete edge set.
				case cfg.rng.Float64() >= p:
					// Trial failed: skip this pair.
					continue
				}
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodErdosRenyi, i, j, err)
				}
			}
		}

		return nil
	}
}
