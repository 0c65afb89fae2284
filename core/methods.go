// SPDX-License-Identifier: MIT
// Package: varcut/core
//
// methods.go — Graph mutation, query, and clone methods.
//
// Complexity:
//   • AddNode/AddEdge/HasEdge: O(1) amortized.
//   • Degree: O(E). Clone: O(V+E).

package core

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// pairKey normalizes an unordered endpoint pair to a (min,max) key.
func pairKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// AddNode appends a node at position pos and returns its ID.
func (g *Graph) AddNode(pos r2.Vec) int {
	id := len(g.Nodes)
	g.Nodes = append(g.Nodes, &Node{ID: id, Pos: pos})

	return id
}

// AddEdge inserts the unordered edge u—v.
// Returns ErrNodeRange, ErrSelfLoop, or ErrDuplicateEdge on violation.
func (g *Graph) AddEdge(u, v int) error {
	// Validate endpoints first; range errors dominate loop/duplicate.
	if u < 0 || u >= len(g.Nodes) || v < 0 || v >= len(g.Nodes) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrNodeRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}

	key := pairKey(u, v)
	if g.pairs == nil {
		g.pairs = make(map[[2]int]struct{})
	}
	if _, dup := g.pairs[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.pairs[key] = struct{}{}
	g.Edges = append(g.Edges, Edge{Source: u, Target: v})

	return nil
}

// NodeCount reports the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount reports the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// HasEdge reports whether the unordered pair u—v is present.
func (g *Graph) HasEdge(u, v int) bool {
	if g.pairs == nil {
		return false
	}
	_, ok := g.pairs[pairKey(u, v)]

	return ok
}

// Degree counts edges incident to node id.
func (g *Graph) Degree(id int) int {
	deg := 0
	for _, e := range g.Edges {
		if e.Source == id || e.Target == id {
			deg++
		}
	}

	return deg
}

// Clone returns a deep copy: nodes are fresh values, edges copied.
// The clone is fully independent of the receiver.
func (g *Graph) Clone() *Graph {
	c := NewGraph()
	c.Nodes = make([]*Node, len(g.Nodes))
	for i, n := range g.Nodes {
		cp := *n // copy the node value, not the pointer
		c.Nodes[i] = &cp
	}

	c.Edges = make([]Edge, len(g.Edges))
	copy(c.Edges, g.Edges)
	for _, e := range c.Edges {
		c.pairs[pairKey(e.Source, e.Target)] = struct{}{}
	}

	return c
}
