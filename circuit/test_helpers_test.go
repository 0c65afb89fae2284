package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/varcut/varcut/core"
)

// pathGraph returns the 2-node, 1-edge graph 0—1.
func pathGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddNode(r2.Vec{})
	g.AddNode(r2.Vec{X: 1})
	require.NoError(t, g.AddEdge(0, 1))

	return g
}
