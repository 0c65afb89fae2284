// SPDX-License-Identifier: MIT
// Package: varcut/circuit
//
// build.go — gate matrix construction for the three parameterizations.
//
// Contract:
//   • Every emitted column sums to exactly 1 (stochastic by construction);
//     parameters are clamped to [0,1] before use so no column can go
//     negative, and missing parameter slots read as the neutral 0.5.
//   • Gate order is layer-major, then edge-declaration order within a
//     layer. This exact order is the application and visualization order
//     and MUST be preserved.
//
// Parameter layout (layer l, edge index e, E = edge count):
//   • Reduced:  params[l·E + e]                      — swap probability.
//   • Minimum:  params[2l], params[2l+1]             — shared per layer.
//   • Standard: params[4·(l·E + e) + c], c ∈ 0..3    — one per column.

package circuit

import (
	"fmt"

	"github.com/varcut/varcut/core"
)

// Build produces the ordered gate sequence for graph g under the given
// variant, parameter vector, and layer count.
func Build(v Variant, g *core.Graph, params []float64, layers int) ([]Gate, error) {
	if !v.valid() {
		return nil, fmt.Errorf("Build: variant %d: %w", int(v), ErrUnknownVariant)
	}
	if g == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilGraph)
	}
	if layers < 1 {
		return nil, fmt.Errorf("Build: layers=%d: %w", layers, ErrBadLayers)
	}

	edgeCount := g.EdgeCount()
	gates := make([]Gate, 0, layers*edgeCount)
	for l := 0; l < layers; l++ {
		for e, edge := range g.Edges {
			var gate Gate
			switch v {
			case Reduced:
				gate = reducedGate(edge, paramAt(params, l*edgeCount+e))
			case Minimum:
				gate = minimumGate(edge, paramAt(params, 2*l), paramAt(params, 2*l+1))
			case Standard:
				base := StateCount * (l*edgeCount + e)
				gate = standardGate(edge,
					paramAt(params, base),
					paramAt(params, base+1),
					paramAt(params, base+2),
					paramAt(params, base+3))
			}
			gates = append(gates, gate)
		}
	}

	return gates, nil
}

// ParamCount reports the parameter vector length the variant expects
// for the given layer and edge counts. Unknown variants count zero.
func ParamCount(v Variant, layers, edgeCount int) int {
	switch v {
	case Reduced:
		return layers * edgeCount
	case Minimum:
		return 2 * layers
	case Standard:
		return StateCount * layers * edgeCount
	default:
		return 0
	}
}

// paramAt reads slot i, degrading gracefully: out-of-range slots yield
// the neutral 0.5 and in-range values are clamped to [0,1] so every
// downstream column stays a probability distribution.
func paramAt(params []float64, i int) float64 {
	if i < 0 || i >= len(params) {
		return neutralParam
	}
	p := params[i]
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}

	return p
}

// reducedGate: columns 0 and 3 are identity (same-parity inputs are
// left alone); columns 1 and 2 swap with probability p and stay with
// 1−p, mirrored across the diagonal blocks.
func reducedGate(e core.Edge, p float64) Gate {
	g := Gate{Source: e.Source, Target: e.Target}
	g.M[0][0] = 1
	g.M[3][3] = 1
	g.M[1][1], g.M[2][1] = 1-p, p
	g.M[2][2], g.M[1][2] = 1-p, p

	return g
}

// minimumGate: like reducedGate but with independent swap
// probabilities for the 01 and 10 input states, shared by every edge
// of the layer.
func minimumGate(e core.Edge, p1, p2 float64) Gate {
	g := Gate{Source: e.Source, Target: e.Target}
	g.M[0][0] = 1
	g.M[3][3] = 1
	g.M[1][1], g.M[2][1] = 1-p1, p1
	g.M[2][2], g.M[1][2] = 1-p2, p2

	return g
}

// standardGate: every column c places θc on row 1 and 1−θc on row 2;
// rows 0 and 3 are structurally zero, so output states 00 and 11 are
// never directly reachable. This mirrors the reference construction
// and is preserved deliberately.
func standardGate(e core.Edge, t0, t1, t2, t3 float64) Gate {
	g := Gate{Source: e.Source, Target: e.Target}
	for c, theta := range [StateCount]float64{t0, t1, t2, t3} {
		g.M[1][c] = theta
		g.M[2][c] = 1 - theta
	}

	return g
}
