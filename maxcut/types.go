// SPDX-License-Identifier: MIT
// Package: varcut/maxcut
//
// types.go — training configuration, snapshots, results, sentinels.

package maxcut

import (
	"errors"
	"math/rand"

	"github.com/varcut/varcut/circuit"
	"github.com/varcut/varcut/spsa"
)

// Sentinel errors for the training driver.
var (
	// ErrNilGraph indicates Train was handed a nil graph.
	ErrNilGraph = errors.New("maxcut: nil graph")
	// ErrNoEdges indicates a graph whose cut size is identically zero.
	ErrNoEdges = errors.New("maxcut: graph has no edges")
	// ErrNeedRandSource indicates Config.Rand was left nil.
	ErrNeedRandSource = errors.New("maxcut: rng is required")
	// ErrBadConfig indicates a non-positive budget, batch, or cadence.
	ErrBadConfig = errors.New("maxcut: invalid config")
)

// Config drives one training run.
//
// Rand is the shared pseudo-random source for parameter init, batch
// initial assignments, gate sampling, and SPSA perturbations; seed it
// for reproducible runs. Zero-value Config is unusable — start from
// NewConfig.
type Config struct {
	Variant       circuit.Variant
	Layers        int
	Trials        int // batch size per objective evaluation
	Iterations    int // SPSA step budget
	ProgressEvery int // snapshot cadence, in iterations
	Hyper         spsa.Hyperparams
	Rand          *rand.Rand
}

// Default training knobs.
const (
	DefaultLayers        = 1
	DefaultTrials        = 64
	DefaultIterations    = 100
	DefaultProgressEvery = 10
)

// NewConfig returns the documented defaults with no RNG attached;
// callers set Rand (or call WithSeed) before Train.
func NewConfig() Config {
	return Config{
		Variant:       circuit.Reduced,
		Layers:        DefaultLayers,
		Trials:        DefaultTrials,
		Iterations:    DefaultIterations,
		ProgressEvery: DefaultProgressEvery,
		Hyper:         spsa.DefaultHyperparams(),
	}
}

// WithSeed attaches a fresh seeded RNG and returns the config, for
// fluent test and example setup.
func (c Config) WithSeed(seed int64) Config {
	c.Rand = rand.New(rand.NewSource(seed))

	return c
}

// validate rejects unusable configurations with sentinel errors.
func (c Config) validate() error {
	if c.Rand == nil {
		return ErrNeedRandSource
	}
	if c.Layers < 1 || c.Trials < 1 || c.Iterations < 1 || c.ProgressEvery < 1 {
		return ErrBadConfig
	}

	return nil
}

// HistoryPoint is one (iteration, cost) pair. Cost is the optimizer's
// view: the negated batch-average cut size at the post-update params.
type HistoryPoint struct {
	Iteration int
	Cost      float64
}

// Snapshot is the immutable view of the optimization state published
// to the progress callback: all slices are copies owned by the
// receiver.
type Snapshot struct {
	Iteration int            // 0-based index of the completed step
	Cost      float64        // optimizer cost at this step
	CutSize   float64        // human-facing view: −Cost
	BestCut   float64        // best batch-average cut seen so far
	Params    []float64      // current parameter vector (copy)
	History   []HistoryPoint // full history up to this step (copy)
}

// Result is the outcome of a full training run.
type Result struct {
	Params  []float64      // final parameter vector
	History []HistoryPoint // one point per iteration
	BestCut float64        // best batch-average cut observed
	Gates   []circuit.Gate // circuit built from the final parameters

	nodeCount int
}

// Trace replays the final circuit in inspection mode from a fresh
// random initial assignment, for step-by-step external visualization.
// Each call starts a new, independent replay.
func (r Result) Trace(rng *rand.Rand) (*circuit.Trace, error) {
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	return circuit.NewTrace(RandomBits(r.nodeCount, rng), r.Gates, rng)
}
