package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/varcut/varcut/builder"
	"github.com/varcut/varcut/core"
	"github.com/varcut/varcut/layout"
)

// settledGraph builds a small seeded graph and runs the full budget.
func settledGraph(t *testing.T) (*core.Graph, *layout.Engine) {
	t.Helper()
	g, err := builder.RandomRegularGraph(6, 3, builder.WithSeed(3))
	require.NoError(t, err)

	opts := layout.NewOptions()
	opts.Iterations = 50
	e, err := layout.New(g, opts)
	require.NoError(t, err)
	e.Run()

	return g, e
}

func snapshot(g *core.Graph) []r2.Vec {
	out := make([]r2.Vec, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = n.Pos
	}

	return out
}

func TestNew_Validation(t *testing.T) {
	g, err := builder.CompleteGraph(3)
	require.NoError(t, err)

	_, err = layout.New(nil, layout.NewOptions())
	require.ErrorIs(t, err, layout.ErrNilGraph)

	tests := []struct {
		name   string
		mutate func(*layout.Options)
	}{
		{"zero width", func(o *layout.Options) { o.Width = 0 }},
		{"zero iterations", func(o *layout.Options) { o.Iterations = 0 }},
		{"negative padding", func(o *layout.Options) { o.Padding = -1 }},
		{"padding swallows canvas", func(o *layout.Options) { o.Padding = 500 }},
		{"zero spread", func(o *layout.Options) { o.SpreadFactor = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := layout.NewOptions()
			tc.mutate(&opts)
			_, err := layout.New(g, opts)
			require.ErrorIs(t, err, layout.ErrInvalidOptions)
		})
	}
}

func TestRun_StaysInsidePaddedCanvas(t *testing.T) {
	g, _ := settledGraph(t)
	opts := layout.NewOptions()
	for _, n := range g.Nodes {
		require.GreaterOrEqual(t, n.Pos.X, opts.Padding)
		require.LessOrEqual(t, n.Pos.X, opts.Width-opts.Padding)
		require.GreaterOrEqual(t, n.Pos.Y, opts.Padding)
		require.LessOrEqual(t, n.Pos.Y, opts.Height-opts.Padding)
	}
}

func TestStep_IdempotentAtConvergence(t *testing.T) {
	g, e := settledGraph(t)
	require.InDelta(t, 0.0, e.Alpha(), 1e-12)

	before := snapshot(g)
	for i := 0; i < 10; i++ {
		e.Step()
	}
	require.Equal(t, before, snapshot(g), "frozen engine must not move nodes")
}

func TestStep_FixedNodesNeverMove(t *testing.T) {
	g, err := builder.CompleteGraph(5)
	require.NoError(t, err)
	before := snapshot(g)
	g.Nodes[0].Fixed = true

	require.NoError(t, layout.Layout(g, 800, 600, 40))
	require.Equal(t, before[0], g.Nodes[0].Pos)

	// Unfixed neighbors did move.
	moved := false
	for i, n := range g.Nodes {
		if i > 0 && n.Pos != before[i] {
			moved = true
		}
	}
	require.True(t, moved)
}

func TestRun_Deterministic(t *testing.T) {
	g1, _ := settledGraph(t)
	g2, _ := settledGraph(t)
	require.Equal(t, snapshot(g1), snapshot(g2))
}

func TestRun_SpreadsCoincidentNodes(t *testing.T) {
	// Two isolated nodes starting at the same point must separate.
	g := core.NewGraph()
	g.AddNode(r2.Vec{X: 400, Y: 300})
	g.AddNode(r2.Vec{X: 400, Y: 300})

	require.NoError(t, layout.Layout(g, 800, 600, 30))
	require.NotEqual(t, g.Nodes[0].Pos, g.Nodes[1].Pos)
}
