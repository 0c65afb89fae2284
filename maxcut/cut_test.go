package maxcut_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/varcut/varcut/builder"
	"github.com/varcut/varcut/core"
	"github.com/varcut/varcut/maxcut"
)

func TestCutSize_K4Scenario(t *testing.T) {
	g, err := builder.CompleteGraph(4)
	require.NoError(t, err)

	// K4 with alternating labels cuts exactly the 4 cross edges.
	require.Equal(t, 4, maxcut.CutSize([]int{0, 1, 0, 1}, g.Edges))
}

func TestCutSize_Extremes(t *testing.T) {
	g, err := builder.CompleteGraph(5)
	require.NoError(t, err)

	// Monochromatic assignments cut nothing.
	require.Zero(t, maxcut.CutSize([]int{0, 0, 0, 0, 0}, g.Edges))
	require.Zero(t, maxcut.CutSize([]int{1, 1, 1, 1, 1}, g.Edges))

	// A 4-cycle is bipartite: the matching 2-coloring cuts every edge.
	cycle := core.NewGraph()
	for i := 0; i < 4; i++ {
		cycle.AddNode(r2.Vec{})
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, cycle.AddEdge(i, (i+1)%4))
	}
	require.Equal(t, 4, maxcut.CutSize([]int{0, 1, 0, 1}, cycle.Edges))
}

func TestCutSize_WithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	g, err := builder.ErdosRenyiGraph(10, 0.5, builder.WithSeed(6))
	require.NoError(t, err)

	for trial := 0; trial < 100; trial++ {
		bits := maxcut.RandomBits(g.NodeCount(), rng)
		cut := maxcut.CutSize(bits, g.Edges)
		require.GreaterOrEqual(t, cut, 0)
		require.LessOrEqual(t, cut, g.EdgeCount())
	}
}

func TestAverageCutSize(t *testing.T) {
	g, err := builder.CompleteGraph(4)
	require.NoError(t, err)

	trials := [][]int{
		{0, 1, 0, 1}, // cut 4
		{0, 0, 0, 0}, // cut 0
		{1, 0, 0, 0}, // cut 3
	}
	require.InDelta(t, 7.0/3.0, maxcut.AverageCutSize(trials, g.Edges), 1e-12)

	// Empty batch is a precondition violation: NaN, not a panic.
	require.True(t, math.IsNaN(maxcut.AverageCutSize(nil, g.Edges)))
}

func TestRandomBits(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	bits := maxcut.RandomBits(64, rng)
	require.Len(t, bits, 64)
	for _, b := range bits {
		require.Contains(t, []int{0, 1}, b)
	}
}
