// SPDX-License-Identifier: MIT
// Package: varcut/maxcut
//
// trainer.go — the SPSA training loop.
//
// Control flow per iteration:
//   objective(θ) = −AverageCutSize over a Trials-sized batch of the
//   circuit Build(variant, g, θ, layers), every trial starting from
//   one shared random initial assignment drawn fresh per evaluation.
//   One spsa.Step consumes three objective evaluations (θ+, θ−, and
//   the post-update realized cost).

package maxcut

import (
	"fmt"

	"github.com/varcut/varcut/circuit"
	"github.com/varcut/varcut/core"
	"github.com/varcut/varcut/spsa"
)

// Train runs the full iteration budget synchronously and returns the
// final parameters, history, and circuit. progress may be nil; when
// set it receives an immutable Snapshot every cfg.ProgressEvery
// iterations and always after the final one.
func Train(g *core.Graph, cfg Config, progress func(Snapshot)) (Result, error) {
	const method = "Train"

	if g == nil {
		return Result{}, fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.EdgeCount() == 0 {
		return Result{}, fmt.Errorf("%s: %w", method, ErrNoEdges)
	}
	if err := cfg.validate(); err != nil {
		return Result{}, fmt.Errorf("%s: %w", method, err)
	}

	rng := cfg.Rand

	// Fresh uniform starting point of the exact variant length.
	params, err := circuit.RandomParams(cfg.Variant, cfg.Layers, g.EdgeCount(), rng)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", method, err)
	}

	// The optimizer minimizes, the domain maximizes: negate here, and
	// negate again wherever a cut size is reported to humans.
	var objErr error
	objective := func(p []float64) float64 {
		gates, berr := circuit.Build(cfg.Variant, g, p, cfg.Layers)
		if berr != nil {
			objErr = berr
			return 0
		}
		finals, rerr := circuit.RunBatch(RandomBits(g.NodeCount(), rng), gates, cfg.Trials, rng)
		if rerr != nil {
			objErr = rerr
			return 0
		}

		return -AverageCutSize(finals, g.Edges)
	}

	history := make([]HistoryPoint, 0, cfg.Iterations)
	best := 0.0
	for k := 0; k < cfg.Iterations; k++ {
		var cost float64
		params, cost, err = spsa.Step(params, k, objective, cfg.Hyper, rng)
		if err != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", method, k, err)
		}
		if objErr != nil {
			return Result{}, fmt.Errorf("%s: iteration %d: %w", method, k, objErr)
		}

		history = append(history, HistoryPoint{Iteration: k, Cost: cost})
		if cut := -cost; cut > best {
			best = cut
		}

		if progress != nil && ((k+1)%cfg.ProgressEvery == 0 || k == cfg.Iterations-1) {
			progress(snapshotOf(k, cost, best, params, history))
		}
	}

	// The final circuit is rebuilt once from the trained parameters;
	// this is the gate sequence inspection mode replays.
	gates, err := circuit.Build(cfg.Variant, g, params, cfg.Layers)
	if err != nil {
		return Result{}, fmt.Errorf("%s: final build: %w", method, err)
	}

	return Result{
		Params:    params,
		History:   history,
		BestCut:   best,
		Gates:     gates,
		nodeCount: g.NodeCount(),
	}, nil
}

// snapshotOf deep-copies the mutable state into an immutable view.
func snapshotOf(k int, cost, best float64, params []float64, history []HistoryPoint) Snapshot {
	p := make([]float64, len(params))
	copy(p, params)
	h := make([]HistoryPoint, len(history))
	copy(h, history)

	return Snapshot{
		Iteration: k,
		Cost:      cost,
		CutSize:   -cost,
		BestCut:   best,
		Params:    p,
		History:   h,
	}
}
