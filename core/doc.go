// Package core defines the central Graph, Node, and Edge types used by
// every other varcut package.
//
// What:
//
//   - Node carries a stable integer ID, a 2D position (gonum r2.Vec),
//     and a Fixed flag excluding it from layout displacement.
//   - Edge is an unordered pair of node IDs; self-loops and duplicate
//     pairs are rejected on insertion.
//   - Graph owns an ordered node slice (index == ID) and an ordered
//     edge slice; edge declaration order is meaningful downstream
//     (circuit gates are emitted in it).
//
// Why:
//
//   - The Max-Cut circuit, the layout solver, and the evaluator all
//     share exactly this representation; nothing richer (weights,
//     direction, metadata) is required by the algorithm.
//
// Ownership:
//
//   - A Graph is owned by exactly one computation at a time and handed
//     off by value/transfer; there is no internal locking.
//
// Errors:
//
//   - ErrNodeRange: an edge endpoint references a non-existent node.
//   - ErrSelfLoop: an edge connects a node to itself.
//   - ErrDuplicateEdge: the unordered pair already exists.
package core
