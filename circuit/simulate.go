// SPDX-License-Identifier: MIT
// Package: varcut/circuit
//
// simulate.go — the shared sampling rule and batch execution.
//
// Sampling rule (both modes):
//   • input state s = 2·bits[Source] + bits[Target];
//   • column s of the gate matrix gives P[0..3];
//   • draw r ∈ [0,1), pick the smallest k with cumsum(P)[k] ≥ r;
//   • if rounding leaves no such k, default to k=3 — unreachable under
//     correctly normalized columns, but safe;
//   • new bits: Source ← k/2, Target ← k mod 2.

package circuit

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// sample applies one gate to bits, returning the input state, the
// sampled output state, and the probability column used. bits is
// mutated in place at the two endpoint positions.
func sample(g Gate, bits []int, rng *rand.Rand) (input, output int, probs [StateCount]float64) {
	input = 2*bits[g.Source] + bits[g.Target]
	probs = g.Column(input)

	cum := make([]float64, StateCount)
	floats.CumSum(cum, probs[:])

	r := rng.Float64()
	output = StateCount - 1 // rounding fallback: last state
	for k, c := range cum {
		if c >= r {
			output = k
			break
		}
	}

	bits[g.Source] = output / 2
	bits[g.Target] = output % 2

	return input, output, probs
}

// validateRun checks the shared preconditions of RunBatch and NewTrace:
// a live RNG and an assignment long enough for every gate endpoint.
func validateRun(method string, initial []int, gates []Gate, rng *rand.Rand) error {
	if rng == nil {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}
	for _, g := range gates {
		if g.Source >= len(initial) || g.Target >= len(initial) {
			return fmt.Errorf("%s: gate %d—%d vs %d bits: %w",
				method, g.Source, g.Target, len(initial), ErrBitsMismatch)
		}
	}

	return nil
}

// RunBatch executes trials independent runs of the full gate sequence,
// each starting from the same initial assignment, and returns the
// final assignments. Trials are independent draws from the shared RNG,
// deliberately uncorrelated. The initial slice is never mutated.
func RunBatch(initial []int, gates []Gate, trials int, rng *rand.Rand) ([][]int, error) {
	const method = "RunBatch"
	if trials < 1 {
		return nil, fmt.Errorf("%s: trials=%d: %w", method, trials, ErrBadTrials)
	}
	if err := validateRun(method, initial, gates, rng); err != nil {
		return nil, err
	}

	out := make([][]int, trials)
	for t := 0; t < trials; t++ {
		bits := make([]int, len(initial))
		copy(bits, initial)
		for _, g := range gates {
			sample(g, bits, rng)
		}
		out[t] = bits
	}

	return out, nil
}
