// SPDX-License-Identifier: MIT

// Package inference evaluates the boolean-algebra graph over fuzzy activations.
//
// A Node combines two operands with one Operator:
//
//	AND      min(left, right)
//	OR       max(left, right)
//	NOT      1 - left          (right ignored)
//	IDENTITY left              (right ignored)
//
// Operands are ids resolved through a Source, in this order:
//
//  1. another node        → evaluated recursively
//  2. an input trapezoid  → its membership at the variable's current value
//  3. a foreign system    → that system's normalized output
//  4. anything else       → 0 (empty or dangling ids are not errors)
//
// Cycles:
//
// Evaluation depth grows by one per node. Reading a node or a system while
// deeper than the configured maximum (DefaultMaxDepth) yields the Cycle
// result instead of recursing, and Combine propagates Cycle to the root.
// Deep acyclic chains are cut off by the same rule; the host decides what a
// Cycle means (fuzzy.System keeps the target height at 1).
//
// Concurrency: stateless; safe to call concurrently as long as the Source is.
package inference
