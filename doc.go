// Package varcut is the algorithmic core of a variational Max-Cut
// visualizer: classical stochastic "circuits" of pairwise Markov gates
// act on binary node labels, and a gradient-free optimizer tunes the
// gate parameters to maximize the expected cut size.
//
// 🚀 What is varcut?
//
//	A small, deterministic-by-seed library that brings together:
//	  • core    — graph primitives with 2D node positions
//	  • builder — complete, Erdős–Rényi and random d-regular generators
//	  • layout  — a Fruchterman–Reingold force-directed layout solver
//	  • circuit — column-stochastic two-bit gates, batch simulation and
//	              a step-by-step inspection trace
//	  • spsa    — Simultaneous Perturbation Stochastic Approximation
//	  • maxcut  — cut-size evaluation and the SPSA training loop
//
// ✨ Why choose varcut?
//
//   - Pure Go compute kernel — no UI, no persistence, no background work
//   - Every stochastic path takes an explicit *rand.Rand for
//     reproducible runs and golden tests
//   - Column-stochastic gate matrices are valid by construction,
//     never checked at apply time
//
// Note: this is NOT a quantum simulator. All state is classical
// probability over two bits — a 4×4 column-stochastic matrix per gate.
//
// A typical session:
//
//	g, _ := builder.RandomRegularGraph(8, 3, builder.WithSeed(1))
//	layout.Layout(g, 800, 600, 300)
//	res, _ := maxcut.Train(g, maxcut.NewConfig(), nil)
//	tr := res.Trace(rand.New(rand.NewSource(7)))
//	for st, ok := tr.Next(); ok; st, ok = tr.Next() {
//	    // feed st to the renderer
//	}
//
//	go get github.com/varcut/varcut
package varcut
