// SPDX-License-Identifier: MIT

package inference

import (
	"math"
	"strconv"
)

// Result is the outcome of evaluating a node: either a degree in [0, 1] or
// the Cycle marker. The zero Result is Value(0).
type Result struct {
	v     float64
	cycle bool
}

// Value wraps a degree.
func Value(v float64) Result { return Result{v: v} }

// Cycle is the marker for a cycle (or an over-deep chain) met during evaluation.
func Cycle() Result { return Result{cycle: true} }

// IsCycle reports whether r is the Cycle marker.
func (r Result) IsCycle() bool { return r.cycle }

// Float returns the degree and ok=false for a Cycle.
func (r Result) Float() (float64, bool) {
	if r.cycle {
		return 0, false
	}

	return r.v, true
}

// String renders the degree or "cycle".
func (r Result) String() string {
	if r.cycle {
		return "cycle"
	}

	return strconv.FormatFloat(r.v, 'g', -1, 64)
}

// Combine applies op. A Cycle in any operand op reads is returned as Cycle;
// the right operand of a unary operator is never inspected. Unknown
// operators yield Value(0).
func Combine(op Operator, left, right Result) Result {
	if !op.Valid() {
		return Value(0)
	}
	if left.cycle {
		return Cycle()
	}

	switch op {
	case And:
		if right.cycle {
			return Cycle()
		}
		return Value(math.Min(left.v, right.v))
	case Or:
		if right.cycle {
			return Cycle()
		}
		return Value(math.Max(left.v, right.v))
	case Not:
		return Value(1 - left.v)
	case Identity:
		return left
	default:
		return Value(0)
	}
}
