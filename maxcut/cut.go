// SPDX-License-Identifier: MIT
// Package: varcut/maxcut
//
// cut.go — cut-size evaluation.

package maxcut

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/varcut/varcut/core"
)

// CutSize counts edges whose endpoints hold different bit values.
// The result is in [0, len(edges)]. bits must cover every edge
// endpoint; this is a precondition, not a checked error.
func CutSize(bits []int, edges []core.Edge) int {
	cut := 0
	for _, e := range edges {
		if bits[e.Source] != bits[e.Target] {
			cut++
		}
	}

	return cut
}

// AverageCutSize is the arithmetic mean of CutSize over a batch of
// trial assignments. Calling it on an empty batch is undefined (the
// mean of nothing); per gonum's stat.Mean it yields NaN rather than
// panicking. Callers must not pass an empty batch.
func AverageCutSize(trials [][]int, edges []core.Edge) float64 {
	sizes := make([]float64, len(trials))
	for i, bits := range trials {
		sizes[i] = float64(CutSize(bits, edges))
	}

	return stat.Mean(sizes, nil)
}

// RandomBits draws a uniform assignment of n binary labels.
func RandomBits(n int, rng *rand.Rand) []int {
	bits := make([]int, n)
	for i := range bits {
		bits[i] = rng.Intn(2)
	}

	return bits
}
