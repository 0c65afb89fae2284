// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidParameter).
//   • Adds nodes 0..n-1 on the placement circle in ascending order.
//   • Emits each unordered pair {i,j} with i<j exactly once, in
//     lexicographic order by (i,j) — n·(n−1)/2 edges total.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges. Space: O(1) extra.
//
// Determinism:
//   • Fully deterministic; no RNG consulted.

package builder

import (
	"fmt"

	"github.com/varcut/varcut/core"
)

// File-local constants (no magic numbers; stable method tag).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	// The returned closure captures n; Build supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// Early parameter validation: K_n is defined for n ≥ 1.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodComplete, n, minCompleteNodes, ErrInvalidParameter)
		}

		// Place all vertices deterministically on the circle.
		placeOnCircle(g, cfg, n)

		// Emit each unordered pair {i,j} with i<j in stable order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := g.AddEdge(i, j); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
				}
			}
		}

		return nil
	}
}
