// SPDX-License-Identifier: MIT

// Package wiring provides the small directed dependency graph used to reason
// about how inference nodes and systems feed each other.
//
// Vertices are opaque string ids (node ids and system ids share one graph);
// an edge u→v means "evaluating u reads v". A path leading from a vertex back
// to itself is a cycle reference.
//
// What:
//
//   - Graph: directed, unweighted, no parallel edges; self-loops allowed
//     (a node reading itself is the shortest cycle).
//   - Reaches / PathTo: iterative reachability with parent links.
//   - FindCycle: the cycle through one start vertex, closed [s … s].
//   - DetectCycles: every back-edge cycle of a three-colour DFS, rotated so the
//     smallest id leads, sorted for deterministic output.
//   - TopologicalSort: reverse post-order; ErrCycleDetected on a back edge,
//     ctx.Err() once the WithCancelContext context is done.
//
// Complexity:
//
//   - Reaches, PathTo, FindCycle: O(V + E) time, O(V) memory.
//   - DetectCycles:              O(V + E + C·L) time, C cycles of length L.
//   - TopologicalSort:           O(V + E) time, O(V) memory.
//
// Determinism: Vertices and out-edges are walked in sorted order, so every
// traversal visits vertices in the same order on every run.
//
// Errors:
//
//   - ErrEmptyVertexID   AddVertex/AddEdge with "".
//   - ErrVertexNotFound  a query on an unknown vertex.
//   - ErrCycleDetected   TopologicalSort met a back edge.
package wiring
