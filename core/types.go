// SPDX-License-Identifier: MIT
// Package: varcut/core
//
// types.go — Node, Edge, Graph declarations and sentinel errors.
//
// Contract:
//   • Node IDs are dense: node i lives at Graph.Nodes[i].
//   • Edges are unordered, simple (no loops, no duplicates).
//   • Mutation happens through AddNode/AddEdge only; both validate and
//     return sentinel errors, never panic.

package core

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeRange indicates an edge endpoint outside [0, NodeCount).
	ErrNodeRange = errors.New("core: node id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the unordered pair is already present.
	ErrDuplicateEdge = errors.New("core: duplicate edge not allowed")
)

// Node is a graph vertex with a planar position.
//
// ID is the node's index in Graph.Nodes and is stable for the lifetime
// of the graph. Pos is mutated in place by the layout solver. Fixed
// nodes still exert forces on others but are never displaced.
type Node struct {
	ID    int
	Pos   r2.Vec
	Fixed bool
}

// Edge is an unordered pair of node IDs with Source != Target.
// Edges are created by the builder package and immutable thereafter.
type Edge struct {
	Source int
	Target int
}

// Graph owns an ordered sequence of nodes (index == ID) and a sequence
// of edges. The zero value is an empty, usable graph.
type Graph struct {
	Nodes []*Node
	Edges []Edge

	// pairs indexes normalized (min,max) endpoint pairs for O(1)
	// duplicate detection; rebuilt lazily by Clone.
	pairs map[[2]int]struct{}
}

// NewGraph returns an empty graph ready for AddNode/AddEdge.
func NewGraph() *Graph {
	return &Graph{pairs: make(map[[2]int]struct{})}
}
