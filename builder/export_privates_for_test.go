// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// export_privates_for_test.go — re-exports internals for white-box tests.

package builder

import "github.com/varcut/varcut/core"

// RingFallback exposes the deterministic fallback used when stub
// matching exhausts its attempt budget, so tests can exercise it
// directly without forcing 100 colliding shuffles.
func RingFallback(g *core.Graph, n, d int) error { return ringFallback(g, n, d) }
