// Package maxcut evaluates cut sizes and drives the full variational
// training loop: sample parameters, build the circuit, simulate a
// batch, average the cut, take one SPSA step, repeat.
//
// What:
//
//   - CutSize / AverageCutSize — the pure evaluation functions over bit
//     assignments and edges.
//   - Config — variant, layer count, batch size, iteration budget,
//     progress cadence, SPSA gains, and the RNG every stochastic choice
//     flows through.
//   - Train — the single-threaded, synchronous loop. Each iteration
//     evaluates the NEGATED average cut size (the optimizer minimizes,
//     the domain maximizes) over a fresh batch sharing one random
//     initial assignment, then updates the parameters.
//   - Snapshot — an immutable view (copied params and history) handed
//     to the injected progress callback every ProgressEvery iterations;
//     the callback is the only observability surface, there is no
//     logger and no background work.
//   - Result — final parameters, full history, best observed cut, and
//     the final gate sequence; Result.Trace replays that circuit in
//     inspection mode for external visualization.
//
// Concurrency: none. Each graph, gate sequence, and assignment is
// owned by exactly one computation at a time; the loop blocks until
// done and yields nothing between iterations beyond the callback.
package maxcut
