// Package builder constructs the graph topologies the Max-Cut circuit
// runs on: complete, Erdős–Rényi, and random d-regular graphs.
//
// What:
//
//   - Constructor closures mutate a core.Graph under a resolved, immutable
//     builderConfig; Build composes them deterministically.
//   - All variants place node i on a circle of configurable radius around
//     a configurable center, at angle 2πi/n — a neutral, symmetric start
//     for the layout solver and deterministic by index order.
//   - RandomRegular uses stub matching with up to 100 reshuffles, then
//     falls back to a deterministic ring (plus a skip-one ring when the
//     requested degree exceeds 2). The fallback is a success, not an error.
//
// Determinism:
//
//   - Same seed, options, and constructor order ⇒ identical graphs.
//   - Stochastic constructors require an explicit RNG via WithSeed or
//     WithRand; deterministic ones ignore it.
//
// Errors:
//
//   - ErrInvalidParameter: n·d odd, d ≥ n, d < 0, or n < 1 for RandomRegular;
//     n < 1 elsewhere.
//   - ErrInvalidProbability: Erdős–Rényi p outside [0,1].
//   - ErrNeedRandSource: a stochastic constructor resolved without an RNG.
//
// Options panic on meaningless values (programmer error); constructors
// only ever return sentinel errors.
package builder
