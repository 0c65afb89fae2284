// SPDX-License-Identifier: MIT
// Package: varcut/spsa
//
// spsa.go — hyperparameters and the single-step update.

package spsa

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Sentinel errors for the optimizer.
var (
	// ErrNilObjective indicates Step was handed a nil objective.
	ErrNilObjective = errors.New("spsa: nil objective")
	// ErrNeedRandSource indicates Step was handed a nil RNG.
	ErrNeedRandSource = errors.New("spsa: rng is required")
	// ErrEmptyParams indicates a zero-length parameter vector.
	ErrEmptyParams = errors.New("spsa: empty parameter vector")
)

// Objective is a (typically noisy, non-differentiable) cost function
// to be minimized. It must not retain or mutate its argument.
type Objective func(params []float64) float64

// Hyperparams are the five fixed SPSA gains.
//
// Defaults follow the standard practical guidance: alpha=0.602 and
// gamma=0.101 are the asymptotically sub-optimal but finite-sample
// friendly exponents; Stability (the "A" offset) damps the first steps.
type Hyperparams struct {
	A         float64 // step-size numerator a
	C         float64 // perturbation-size numerator c
	Alpha     float64 // step-size decay exponent
	Gamma     float64 // perturbation decay exponent
	Stability float64 // step-size denominator offset
}

// Default gain values.
const (
	DefaultA         = 0.1
	DefaultC         = 0.1
	DefaultAlpha     = 0.602
	DefaultGamma     = 0.101
	DefaultStability = 10.0
)

// DefaultHyperparams returns the documented defaults
// (0.1, 0.1, 0.602, 0.101, 10).
func DefaultHyperparams() Hyperparams {
	return Hyperparams{
		A:         DefaultA,
		C:         DefaultC,
		Alpha:     DefaultAlpha,
		Gamma:     DefaultGamma,
		Stability: DefaultStability,
	}
}

// Gains returns the decayed step and perturbation sizes for 0-based
// iteration k: aₖ = A/(k+1+Stability)^Alpha, cₖ = C/(k+1)^Gamma.
func (h Hyperparams) Gains(k int) (ak, ck float64) {
	ak = h.A / math.Pow(float64(k)+1+h.Stability, h.Alpha)
	ck = h.C / math.Pow(float64(k)+1, h.Gamma)

	return ak, ck
}

// Step performs one SPSA update on params at iteration k against f,
// returning the updated vector and the realized cost f(updated).
// The input slice is never mutated; parameters stay in [0,1] through
// every evaluation and through the update itself.
func Step(params []float64, k int, f Objective, h Hyperparams, rng *rand.Rand) ([]float64, float64, error) {
	if f == nil {
		return nil, 0, fmt.Errorf("Step: %w", ErrNilObjective)
	}
	if rng == nil {
		return nil, 0, fmt.Errorf("Step: %w", ErrNeedRandSource)
	}
	if len(params) == 0 {
		return nil, 0, fmt.Errorf("Step: %w", ErrEmptyParams)
	}

	ak, ck := h.Gains(k)

	// Uniform ±1 perturbation direction.
	delta := make([]float64, len(params))
	for i := range delta {
		if rng.Intn(2) == 0 {
			delta[i] = -1
		} else {
			delta[i] = 1
		}
	}

	// Two perturbed evaluation points, clipped into the probability box.
	plus := make([]float64, len(params))
	minus := make([]float64, len(params))
	for i, p := range params {
		plus[i] = clip01(p + ck*delta[i])
		minus[i] = clip01(p - ck*delta[i])
	}
	fPlus := f(plus)
	fMinus := f(minus)

	// Componentwise gradient estimate and clipped update.
	next := make([]float64, len(params))
	for i, p := range params {
		grad := (fPlus - fMinus) / (2 * ck * delta[i])
		next[i] = clip01(p - ak*grad*delta[i])
	}

	// The caller-visible cost is taken at the post-update parameters.
	return next, f(next), nil
}

// clip01 restricts v to the closed interval [0,1].
func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
