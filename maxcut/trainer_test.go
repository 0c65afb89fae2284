package maxcut_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varcut/varcut/builder"
	"github.com/varcut/varcut/circuit"
	"github.com/varcut/varcut/core"
	"github.com/varcut/varcut/maxcut"
)

// shortRun trains K4 with a small, seeded budget.
func shortRun(t *testing.T, seed int64) (maxcut.Result, *core.Graph) {
	t.Helper()
	g, err := builder.CompleteGraph(4)
	require.NoError(t, err)

	cfg := maxcut.NewConfig().WithSeed(seed)
	cfg.Iterations = 25
	cfg.Trials = 16

	res, err := maxcut.Train(g, cfg, nil)
	require.NoError(t, err)

	return res, g
}

func TestTrain_ResultShape(t *testing.T) {
	res, g := shortRun(t, 1)

	require.Len(t, res.History, 25)
	require.Len(t, res.Gates, g.EdgeCount()) // 1 layer ⇒ one gate per edge
	require.Len(t, res.Params, circuit.ParamCount(circuit.Reduced, 1, g.EdgeCount()))

	for i, p := range res.Params {
		require.GreaterOrEqual(t, p, 0.0, "param %d", i)
		require.LessOrEqual(t, p, 1.0, "param %d", i)
	}

	require.GreaterOrEqual(t, res.BestCut, 0.0)
	require.LessOrEqual(t, res.BestCut, float64(g.EdgeCount()))

	// History is contiguous and costs are negated cut averages.
	for k, hp := range res.History {
		require.Equal(t, k, hp.Iteration)
		require.LessOrEqual(t, hp.Cost, 0.0)
		require.GreaterOrEqual(t, hp.Cost, -float64(g.EdgeCount()))
	}
}

func TestTrain_DeterministicPerSeed(t *testing.T) {
	a, _ := shortRun(t, 42)
	b, _ := shortRun(t, 42)
	require.Equal(t, a.History, b.History)
	require.Equal(t, a.Params, b.Params)

	c, _ := shortRun(t, 43)
	require.NotEqual(t, a.History, c.History)
}

func TestTrain_ProgressCadence(t *testing.T) {
	g, err := builder.CompleteGraph(4)
	require.NoError(t, err)

	cfg := maxcut.NewConfig().WithSeed(3)
	cfg.Iterations = 25
	cfg.ProgressEvery = 10

	var seen []maxcut.Snapshot
	_, err = maxcut.Train(g, cfg, func(s maxcut.Snapshot) { seen = append(seen, s) })
	require.NoError(t, err)

	// Iterations 9, 19, and the final 24.
	require.Len(t, seen, 3)
	require.Equal(t, 9, seen[0].Iteration)
	require.Equal(t, 19, seen[1].Iteration)
	require.Equal(t, 24, seen[2].Iteration)

	for _, s := range seen {
		require.Equal(t, -s.Cost, s.CutSize)
		require.Equal(t, s.Iteration+1, len(s.History))
	}
}

func TestTrain_SnapshotsAreImmutableViews(t *testing.T) {
	g, err := builder.CompleteGraph(4)
	require.NoError(t, err)

	cfg := maxcut.NewConfig().WithSeed(5)
	cfg.Iterations = 20
	cfg.ProgressEvery = 5

	res, err := maxcut.Train(g, cfg, func(s maxcut.Snapshot) {
		// Scribble over the published copies.
		for i := range s.Params {
			s.Params[i] = -99
		}
		for i := range s.History {
			s.History[i].Cost = 99
		}
	})
	require.NoError(t, err)

	// The run was unaffected by snapshot vandalism.
	for _, p := range res.Params {
		require.GreaterOrEqual(t, p, 0.0)
	}
	for _, hp := range res.History {
		require.LessOrEqual(t, hp.Cost, 0.0)
	}
}

func TestTrain_Validation(t *testing.T) {
	g, err := builder.CompleteGraph(4)
	require.NoError(t, err)
	edgeless := core.NewGraph()

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"nil graph", func() error {
			_, err := maxcut.Train(nil, maxcut.NewConfig().WithSeed(1), nil)
			return err
		}, maxcut.ErrNilGraph},
		{"no edges", func() error {
			_, err := maxcut.Train(edgeless, maxcut.NewConfig().WithSeed(1), nil)
			return err
		}, maxcut.ErrNoEdges},
		{"missing rng", func() error {
			_, err := maxcut.Train(g, maxcut.NewConfig(), nil)
			return err
		}, maxcut.ErrNeedRandSource},
		{"zero iterations", func() error {
			cfg := maxcut.NewConfig().WithSeed(1)
			cfg.Iterations = 0
			_, err := maxcut.Train(g, cfg, nil)
			return err
		}, maxcut.ErrBadConfig},
		{"zero trials", func() error {
			cfg := maxcut.NewConfig().WithSeed(1)
			cfg.Trials = 0
			_, err := maxcut.Train(g, cfg, nil)
			return err
		}, maxcut.ErrBadConfig},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(), tc.want)
		})
	}
}

func TestResult_TraceReplaysFinalCircuit(t *testing.T) {
	res, g := shortRun(t, 7)

	tr, err := res.Trace(rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	require.Equal(t, len(res.Gates), tr.Len())

	steps := 0
	for st, ok := tr.Next(); ok; st, ok = tr.Next() {
		require.Len(t, st.BitsBefore, g.NodeCount())
		require.Len(t, st.BitsAfter, g.NodeCount())
		steps++
	}
	require.Equal(t, len(res.Gates), steps)

	_, err = res.Trace(nil)
	require.ErrorIs(t, err, maxcut.ErrNeedRandSource)
}

func TestTrain_AllVariants(t *testing.T) {
	g, err := builder.RandomRegularGraph(6, 3, builder.WithSeed(2))
	require.NoError(t, err)

	for _, v := range []circuit.Variant{circuit.Reduced, circuit.Minimum, circuit.Standard} {
		t.Run(v.String(), func(t *testing.T) {
			cfg := maxcut.NewConfig().WithSeed(4)
			cfg.Variant = v
			cfg.Layers = 2
			cfg.Iterations = 10
			cfg.Trials = 8

			res, err := maxcut.Train(g, cfg, nil)
			require.NoError(t, err)
			require.Len(t, res.Params, circuit.ParamCount(v, 2, g.EdgeCount()))
			require.Len(t, res.Gates, 2*g.EdgeCount())
		})
	}
}
