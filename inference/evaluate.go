// SPDX-License-Identifier: MIT

package inference

// DefaultMaxDepth is the node depth past which a node or system operand is
// reported as a Cycle.
const DefaultMaxDepth = 10

// Source resolves operand ids for one system.
type Source interface {
	// Node returns the node with the given id in the same system.
	Node(id string) (Node, bool)

	// Membership returns the degree of an input trapezoid at its variable's
	// current value (0 when the trapezoid does not cover it).
	Membership(trapezoidID string) (float64, bool)

	// System returns a foreign system readable as an operand.
	System(id string) (Remote, bool)
}

// Remote is another system read as an operand.
type Remote interface {
	// OutputAt evaluates the system for reader, a node of the calling system
	// whose chain is already depth nodes deep, and returns its normalized
	// output.
	OutputAt(reader Node, depth int) Result
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithMaxDepth overrides DefaultMaxDepth. Values < 1 are ignored.
func WithMaxDepth(d int) Option {
	return func(e *Evaluator) {
		if d >= 1 {
			e.maxDepth = d
		}
	}
}

// Evaluator evaluates nodes with a depth cutoff.
type Evaluator struct {
	maxDepth int
}

// NewEvaluator returns an Evaluator with DefaultMaxDepth unless overridden.
func NewEvaluator(opts ...Option) Evaluator {
	e := Evaluator{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

// MaxDepth returns the configured cutoff.
func (e Evaluator) MaxDepth() int { return e.maxDepth }

// Evaluate computes the result of n from the root.
func (e Evaluator) Evaluate(n Node, src Source) Result {
	return e.EvaluateAt(n, src, 0)
}

// EvaluateAt computes the result of n reached at the given depth. Hosts use
// it to continue a chain that crossed into another system.
//
// Steps:
//  1. depth++ for this node.
//  2. Resolve the operands op reads (Left only for NOT and IDENTITY).
//  3. Combine.
func (e Evaluator) EvaluateAt(n Node, src Source, depth int) Result {
	if !n.Op.Valid() {
		return Value(0)
	}

	// 1) this node
	depth++

	// 2) operands
	left := e.operand(n, n.Left, src, depth)
	if left.IsCycle() || n.Op.Unary() {
		return Combine(n.Op, left, Result{})
	}
	right := e.operand(n, n.Right, src, depth)

	// 3) algebra
	return Combine(n.Op, left, right)
}

// Evaluate is NewEvaluator(opts...).Evaluate(n, src).
func Evaluate(n Node, src Source, opts ...Option) Result {
	return NewEvaluator(opts...).Evaluate(n, src)
}

func (e Evaluator) operand(reader Node, id string, src Source, depth int) Result {
	if id == "" {
		return Value(0)
	}
	if next, ok := src.Node(id); ok {
		if depth > e.maxDepth {
			return Cycle()
		}
		return e.EvaluateAt(next, src, depth)
	}
	if m, ok := src.Membership(id); ok {
		return Value(m)
	}
	if sys, ok := src.System(id); ok {
		if depth > e.maxDepth {
			return Cycle()
		}
		return sys.OutputAt(reader, depth)
	}

	return Value(0)
}
