// Package circuit builds and executes the parametrized stochastic
// circuits at the heart of the variational Max-Cut model.
//
// What:
//
//   - A Gate is a 4×4 column-stochastic matrix tied to one edge: column
//     c = 2·bitSource + bitTarget holds the conditional output-state
//     distribution over {0,1,2,3}. Columns sum to exactly 1 by
//     construction; nothing is re-checked at apply time.
//   - Build emits one gate per edge per layer, layer-major then
//     edge-declaration order. That order is also the application and
//     visualization order.
//   - Three parameterizations: Reduced (one swap probability per edge
//     per layer), Minimum (two shared probabilities per layer), and
//     Standard (one free column value per column per edge per layer).
//     A parameter slot that does not exist reads as the neutral 0.5.
//   - RunBatch executes many independent trials of the full gate
//     sequence from one shared initial assignment.
//   - Trace is the inspection mode: a finite, pull-based,
//     non-restartable iterator yielding one StepInfo per gate with
//     before/after snapshots of the whole assignment.
//
// Sampling rule (shared by both modes):
//
//	read column s of the gate matrix, draw r ∈ [0,1), select the
//	smallest k with P[0]+…+P[k] ≥ r; on floating-point shortfall
//	default to k = 3. Decode bits as (k/2, k mod 2).
//
// This is classical probability, not amplitude evolution: no complex
// numbers, no unitarity, just Markov kernels on two bits.
package circuit
