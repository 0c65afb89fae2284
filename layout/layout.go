// SPDX-License-Identifier: MIT
// Package: varcut/layout
//
// layout.go — the annealed force-directed solver.

package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/varcut/varcut/core"
)

// Solver tuning constants. alphaMin freezes the engine; minSeparation
// bounds the repulsion denominator so coincident nodes cannot produce
// infinite forces; gravity scales the centering pull.
const (
	alphaMin      = 1e-3
	minSeparation = 1e-2
	gravity       = 0.05
)

// Engine drives the layout of one graph to convergence.
// It mutates node positions in place and holds no other state than the
// iteration counter, so forces are recomputed freshly each step.
type Engine struct {
	g    *core.Graph
	opts Options
	k    float64 // ideal spacing: sqrt(area/(n+1)) * spread
	done int     // completed steps
}

// New validates the inputs and prepares an engine. The ideal spacing
// constant is fixed at construction from the canvas area and node count.
func New(g *core.Graph, opts Options) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	area := opts.Width * opts.Height
	k := math.Sqrt(area/float64(g.NodeCount()+1)) * opts.SpreadFactor

	return &Engine{g: g, opts: opts, k: k}, nil
}

// Alpha reports the current temperature: linear decay from 1 to 0 over
// the iteration budget, never negative.
func (e *Engine) Alpha() float64 {
	a := 1 - float64(e.done)/float64(e.opts.Iterations)
	if a < 0 {
		a = 0
	}

	return a
}

// Step runs one annealed force pass. It is a no-op once the temperature
// has fallen below alphaMin ("frozen"), making repeated calls after
// convergence free and side-effect free.
func (e *Engine) Step() {
	alpha := e.Alpha()
	if alpha < alphaMin {
		return
	}
	e.done++

	nodes := e.g.Nodes
	n := len(nodes)
	disp := make([]r2.Vec, n)

	// Pairwise repulsion: k²/d², applied symmetrically. Fixed nodes
	// contribute forces here even though they will not move below.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			delta := r2.Sub(nodes[i].Pos, nodes[j].Pos)
			dist := math.Hypot(delta.X, delta.Y)
			if dist < minSeparation {
				// Coincident nodes: separate along a deterministic,
				// index-dependent direction instead of dividing by zero.
				angle := float64(i*n+j) // arbitrary but stable per pair
				delta = r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}
				dist = minSeparation
			}
			push := r2.Scale(e.k*e.k/(dist*dist)*alpha/dist, delta)
			disp[i] = r2.Add(disp[i], push)
			disp[j] = r2.Sub(disp[j], push)
		}
	}

	// Edge attraction: softened spring d²/k, letting edges stretch
	// without collapsing endpoints onto each other.
	for _, edge := range e.g.Edges {
		s, t := edge.Source, edge.Target
		delta := r2.Sub(nodes[s].Pos, nodes[t].Pos)
		dist := math.Hypot(delta.X, delta.Y)
		if dist < minSeparation {
			continue
		}
		pull := r2.Scale(dist*dist/e.k*alpha/dist, delta)
		disp[s] = r2.Sub(disp[s], pull)
		disp[t] = r2.Add(disp[t], pull)
	}

	// Weak centering pull keeps components from drifting off-canvas.
	center := r2.Vec{X: e.opts.Width / 2, Y: e.opts.Height / 2}
	for i, node := range nodes {
		toCenter := r2.Sub(center, node.Pos)
		disp[i] = r2.Add(disp[i], r2.Scale(gravity*alpha, toCenter))
	}

	// Apply displacement directly (no velocity term), then clamp into
	// the padded interior. Fixed nodes are never displaced.
	for i, node := range nodes {
		if node.Fixed {
			continue
		}
		node.Pos = r2.Add(node.Pos, disp[i])
		node.Pos.X = clamp(node.Pos.X, e.opts.Padding, e.opts.Width-e.opts.Padding)
		node.Pos.Y = clamp(node.Pos.Y, e.opts.Padding, e.opts.Height-e.opts.Padding)
	}
}

// Run executes the full iteration budget synchronously. The driver
// never schedules steps on a timer; when Run returns the layout is
// settled and repeated Step calls change nothing.
func (e *Engine) Run() {
	for i := 0; i < e.opts.Iterations; i++ {
		e.Step()
	}
}

// Layout is the one-shot convenience: lay out g on a width×height
// canvas with the given iteration budget and default padding/spread.
func Layout(g *core.Graph, width, height float64, iterations int) error {
	opts := NewOptions()
	opts.Width, opts.Height, opts.Iterations = width, height, iterations

	e, err := New(g, opts)
	if err != nil {
		return fmt.Errorf("Layout: %w", err)
	}
	e.Run()

	return nil
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
