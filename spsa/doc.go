// Package spsa implements one step of Simultaneous Perturbation
// Stochastic Approximation, the gradient-free optimizer driving the
// Max-Cut parameter search.
//
// 🚀 What is SPSA?
//
//	A zeroth-order stochastic optimizer: each step evaluates a noisy
//	objective at just two randomly perturbed points (θ ± cₖ·Δ, with Δ a
//	uniform ±1 vector) and estimates every gradient component from that
//	single pair. Decaying gain sequences aₖ and cₖ anneal the step and
//	perturbation sizes.
//
// Step shape (per spec of the training loop):
//
//  1. aₖ = a/(k+1+A)^alpha, cₖ = c/(k+1)^gamma
//  2. Δᵢ ∈ {−1,+1} uniform
//  3. evaluate f at clip(θ+cₖΔ) and clip(θ−cₖΔ)
//  4. ĝᵢ = (f₊ − f₋)/(2·cₖ·Δᵢ)
//  5. θᵢ ← clip(θᵢ − aₖ·ĝᵢ·Δᵢ)
//  6. realized cost = f(θ) at the UPDATED point (not the average of
//     the perturbed evaluations)
//
// Parameters are probabilities, so every evaluation point and every
// update is clipped componentwise to [0,1].
//
// The optimizer minimizes; Max-Cut callers pass the negated average
// cut size and negate again for human-facing values.
package spsa
