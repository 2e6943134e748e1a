// SPDX-License-Identifier: MIT

// Package lvfuzzy is a fuzzy-logic inference evaluator: crisp inputs are
// fuzzified through trapezoidal membership functions, combined by a small
// boolean algebra (AND, OR, NOT, IDENTITY) wired as a graph of inference
// nodes, and defuzzified back to one crisp value by centroid.
//
// What is inside?
//
//	membership/  Trapezoid value type, height-adjusted peaks, intersection, polygon centroid
//	variable/    input and output axes: ordered trapezoids, Fuzzify, Defuzzify
//	inference/   Operator, Node, tagged Result, depth-bounded evaluation
//	wiring/      directed dependency graph: reachability, cycles, topological order
//	fuzzy/       System and Registry: evaluation, cross-system reads, edit-time cycle checks
//	codec/       binary envelope (magic header + JSON) and YAML definitions
//	metrics/     Prometheus collector fed by every Output
//	cmd/fuzzyctl  CLI: eval, pack, inspect, check, follow
//
// One tick of a host loop:
//
//	sys, _ := codec.ReadFile("follow.yaml")
//	_ = sys.SetValue("distance", d)
//	speed, _ := sys.Output() // centroid / output maxValue
//
// Nothing here is safe for concurrent use; a host serializes editing and
// evaluation.
package lvfuzzy
