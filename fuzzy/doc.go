// SPDX-License-Identifier: MIT

// Package fuzzy ties variables and inference nodes into an evaluable system.
//
// A System owns:
//
//   - one or more input variables (fuzzification axes),
//   - exactly one output variable (defuzzification axis),
//   - an ordered list of inference nodes, each driving the height of at most
//     one output trapezoid.
//
// Host loop (one tick):
//
//	_ = sys.SetValue("distance", d)
//	speed, _ := sys.Output()        // centroid / output maxValue
//
// Evaluation:
//
//   - Evaluate: for each output trapezoid the last node targeting it sets its
//     height; no node or a cycle leaves height 1. Evaluate mode off resets
//     every height to 1 (the unweighted union of all output sets).
//   - Output: one forced evaluation pass, then centroid defuzzification,
//     normalized by the output maxValue. Observers receive a Report.
//
// Cross-system references:
//
// A node operand may be the id of another System of the same Registry; it
// reads that system's normalized output. The Registry is a plain object
// owned by the host, not process-wide state.
//
// Cycle defence:
//
//   - Runtime: the depth cutoff of package inference; the node's target
//     keeps height 1 and the Report counts the cycle.
//   - Edit time: Connect, SetOperator and SetTarget walk the read graph (package wiring)
//     across systems and refuse edits that close a loop, leaving the node
//     unchanged (ErrCycleReference).
//   - Validate reports duplicate targets, dangling operands and every cycle.
//
// Concurrency: a System and its Registry are not safe for concurrent use.
// Editing and evaluation must be serialized by the host.
//
// Errors:
//
//   - ErrUninitialized          zero-value System.
//   - ErrVariableNotFound       unknown variable id, name or index.
//   - ErrNodeNotFound           unknown node id, name or index.
//   - ErrLastInput              removing the only input variable.
//   - ErrUnknownOperand         operand naming nothing (Connect, Validate).
//   - ErrInvalidTarget          target outside the output variable.
//   - ErrCycleReference         edit closing a loop, or a cycle in Validate.
//   - ErrDuplicateOutputTarget  several nodes targeting one trapezoid (Validate).
//   - ErrDuplicateID            repeated id in a Snapshot.
//   - ErrNilSystem, ErrAlreadyRegistered  registry misuse.
package fuzzy
