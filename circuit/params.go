// SPDX-License-Identifier: MIT
// Package: varcut/circuit
//
// params.go — random parameter vector generation.

package circuit

import (
	"fmt"
	"math/rand"
)

// RandomParams draws a fresh parameter vector of the exact length the
// variant expects, entries uniform in [0,1). The RNG is mandatory so
// training runs are reproducible by seed.
func RandomParams(v Variant, layers, edgeCount int, rng *rand.Rand) ([]float64, error) {
	if !v.valid() {
		return nil, fmt.Errorf("RandomParams: variant %d: %w", int(v), ErrUnknownVariant)
	}
	if layers < 1 {
		return nil, fmt.Errorf("RandomParams: layers=%d: %w", layers, ErrBadLayers)
	}
	if rng == nil {
		return nil, fmt.Errorf("RandomParams: %w", ErrNeedRandSource)
	}

	params := make([]float64, ParamCount(v, layers, edgeCount))
	for i := range params {
		params[i] = rng.Float64()
	}

	return params, nil
}
