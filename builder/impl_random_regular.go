// SPDX-License-Identifier: MIT
// Package: varcut/builder
//
// impl_random_regular.go — implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   • Undirected d-regular simple graph via stub matching with bounded
//     retries: a multiset holding each node index d times is uniformly
//     shuffled and consecutive elements paired into candidate edges.
//     A pairing containing a self-loop or a duplicate pair discards the
//     whole attempt; a fresh shuffle is drawn.
//   • After maxStubMatchingAttempts failed shuffles the constructor falls
//     back DETERMINISTICALLY to a ring i—(i+1)%n, augmented with a
//     skip-one ring i—(i+2)%n when d > 2. The fallback guarantees
//     termination and is a success, never an error.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; (n·d) even — violations return ErrInvalidParameter.
//   • cfg.rng must be non-nil when d > 0 (else ErrNeedRandSource).
//   • Adds nodes 0..n-1 on the placement circle in ascending order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Per attempt ~O(n·d) validate + apply; attempts constant-bounded.
//
// Determinism:
//   • Fixed attempt limit and fixed trial order ⇒ identical outcomes for
//     the same seed; the fallback is seed-independent.

package builder

import (
	"fmt"

	"github.com/varcut/varcut/core"
)

// File-local constants (no magic numbers/strings; stable method tag).
const (
	methodRandomRegular     = "RandomRegular"
	minRRNodes              = 1
	maxStubMatchingAttempts = 100 // bounded retries before the ring fallback
	fallbackSkipDegree      = 2   // d above this adds the skip-one ring
)

// RandomRegular returns a Constructor that builds an undirected
// d-regular simple graph using stub matching with bounded retries and a
// deterministic ring fallback.
func RandomRegular(n, d int) Constructor {
	// The closure captures (n, d); Build supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Parameter validation (fail fast; zero side-effects on invalid
		//    input). Domain: n≥1, 0≤d<n, parity: (n·d) even.
		if n < minRRNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRNodes, ErrInvalidParameter)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrInvalidParameter)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrInvalidParameter)
		}

		// 2) RNG is mandatory for stub shuffling whenever edges exist.
		if cfg.rng == nil && d > 0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		// 3) Place all vertices deterministically on the circle.
		placeOnCircle(g, cfg, n)

		// Trivial case d=0 → isolated vertices only.
		stubCount := n * d
		if stubCount == 0 {
			return nil
		}

		// 4) Prepare the stub list: each vertex index repeated d times,
		//    filled in ascending index order.
		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		// 5) Attempt bounded reshuffles until a valid pairing appears.
		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			// 5.1) Uniform in-place shuffle (deterministic per seed).
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

			// 5.2) Validate the pairing WITHOUT mutating the graph: every
			//      consecutive pair (stubs[2k], stubs[2k+1]) must be a
			//      loop-free, previously unseen unordered pair.
			valid := true
			seen := make(map[[2]int]struct{}, stubCount/2)
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue // next attempt, fresh shuffle
			}

			// 5.3) Pairing is valid → apply edges.
			for i := 0; i < stubCount; i += 2 {
				if err := g.AddEdge(stubs[i], stubs[i+1]); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w",
						methodRandomRegular, stubs[i], stubs[i+1], err)
				}
			}

			return nil
		}

		// 6) All attempts exhausted → deterministic ring fallback.
		return ringFallback(g, n, d)
	}
}

// ringFallback connects each node to its successor modulo n, and — when
// the requested degree exceeds fallbackSkipDegree — also to the node at
// offset 2. The result is a valid simple graph (not d-regular in
// general), produced without randomness so termination is guaranteed.
// Offsets that wrap onto an existing pair or onto the node itself are
// skipped; on small rings both chords can coincide.
func ringFallback(g *core.Graph, n, d int) error {
	offsets := []int{1}
	if d > fallbackSkipDegree {
		offsets = append(offsets, fallbackSkipDegree)
	}
	for _, off := range offsets {
		for i := 0; i < n; i++ {
			j := (i + off) % n
			if i == j || g.HasEdge(i, j) {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return fmt.Errorf("%s: fallback AddEdge(%d,%d): %w",
					methodRandomRegular, i, j, err)
			}
		}
	}

	return nil
}
