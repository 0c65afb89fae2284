// SPDX-License-Identifier: MIT
// Package: varcut/circuit
//
// types.go — Gate, StepInfo, Variant, and sentinel errors.

package circuit

import (
	"errors"
	"fmt"
)

// Two bits give four joint states; these sizes are structural.
const (
	// StateCount is the number of joint 2-bit states.
	StateCount = 4
	// neutralParam is read for any missing/out-of-range parameter slot.
	neutralParam = 0.5
)

// Sentinel errors for circuit construction and execution.
var (
	// ErrUnknownVariant indicates an unrecognized parameterization name.
	ErrUnknownVariant = errors.New("circuit: unknown variant")
	// ErrNilGraph indicates Build was handed a nil graph.
	ErrNilGraph = errors.New("circuit: nil graph")
	// ErrBadLayers indicates a layer count below 1.
	ErrBadLayers = errors.New("circuit: layer count must be >= 1")
	// ErrBadTrials indicates a batch trial count below 1.
	ErrBadTrials = errors.New("circuit: trial count must be >= 1")
	// ErrNeedRandSource indicates a sampling call without an RNG.
	ErrNeedRandSource = errors.New("circuit: rng is required")
	// ErrBitsMismatch indicates a gate endpoint outside the assignment.
	ErrBitsMismatch = errors.New("circuit: bit assignment too short for circuit")
)

// Variant selects the gate parameterization.
type Variant int

const (
	// Reduced: one scalar per edge per layer; mirrored swap/stay
	// probabilities across the diagonal blocks.
	Reduced Variant = iota
	// Minimum: two scalars per layer, shared by every edge in it.
	Minimum
	// Standard: one free column value per column per edge per layer;
	// rows 0 and 3 stay structurally zero.
	Standard
)

// variantNames maps Variant to its canonical lowercase name.
var variantNames = map[Variant]string{
	Reduced:  "reduced",
	Minimum:  "minimum",
	Standard: "standard",
}

// String returns the canonical variant name, or "unknown".
func (v Variant) String() string {
	if s, ok := variantNames[v]; ok {
		return s
	}

	return "unknown"
}

// valid reports whether v is a declared variant.
func (v Variant) valid() bool {
	_, ok := variantNames[v]

	return ok
}

// ParseVariant resolves a canonical name ("reduced", "minimum",
// "standard") to its Variant, or returns ErrUnknownVariant.
func ParseVariant(name string) (Variant, error) {
	for v, s := range variantNames {
		if s == name {
			return v, nil
		}
	}

	return 0, fmt.Errorf("ParseVariant(%q): %w", name, ErrUnknownVariant)
}

// Gate is one stochastic two-bit operation tied to the edge
// Source—Target. M[row][col] is the probability of output state row
// given input state col; every column sums to exactly 1 by
// construction. Gates are immutable once built.
type Gate struct {
	Source int
	Target int
	M      [StateCount][StateCount]float64
}

// Column returns column c of the gate matrix — the output distribution
// conditioned on input state c.
func (g Gate) Column(c int) [StateCount]float64 {
	var col [StateCount]float64
	for r := 0; r < StateCount; r++ {
		col[r] = g.M[r][c]
	}

	return col
}

// StepInfo captures one gate application for external replay: the
// edge, the full matrix, the 2-bit input state, the sampled output
// state, the probability column used, and snapshots of the whole bit
// assignment immediately before and after. Ownership passes to the
// consumer; slices are fresh copies.
type StepInfo struct {
	Source     int
	Target     int
	Matrix     [StateCount][StateCount]float64
	Input      int
	Output     int
	Probs      [StateCount]float64
	BitsBefore []int
	BitsAfter  []int
}
