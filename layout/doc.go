// Package layout positions graph nodes with a Fruchterman–Reingold
// style force-directed solver, run synchronously to convergence before
// any consumer observes the graph.
//
// What:
//
//   - Engine wraps a core.Graph plus Options (canvas size, iteration
//     budget, padding, spread factor).
//   - Step applies one annealed force pass: pairwise repulsion k²/d²,
//     softened-spring edge attraction d²/k, and a weak centering pull,
//     all scaled by a temperature alpha decaying linearly 1 → 0 over
//     the iteration budget.
//   - Positions move by the accumulated force directly (no velocity
//     integration), then clamp to a padded interior of the canvas.
//   - Fixed nodes exert forces but are never displaced.
//   - Once alpha falls below a small threshold Step is a no-op, so the
//     engine is idempotent at convergence.
//
// Why:
//
//   - Downstream consumers (renderers, the training loop's trace view)
//     must never observe an unsettled layout; Run converges fully in
//     one synchronous call, never on a timer.
//
// Complexity:
//
//   - Step: O(V² + E). Run: O(Iterations · (V² + E)).
//
// Errors:
//
//   - ErrNilGraph: engine constructed over a nil graph.
//   - ErrInvalidOptions: non-positive canvas, iteration budget < 1,
//     negative padding, padding consuming the whole canvas, or a
//     non-positive spread factor.
package layout
