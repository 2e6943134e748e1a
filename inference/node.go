// SPDX-License-Identifier: MIT

package inference

// Side names one operand slot of a Node.
type Side int

const (
	// Left is the first operand, read by every operator.
	Left Side = iota
	// Right is the second operand, read only by AND and OR.
	Right
)

// String returns "left" or "right".
func (s Side) String() string {
	if s == Right {
		return "right"
	}

	return "left"
}

// Node is one inference rule: Op(Left, Right) drives the height of the output
// trapezoid whose id is Output. Empty operand or output ids are allowed.
type Node struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Op     Operator `json:"op" yaml:"op"`
	Left   string   `json:"left,omitempty" yaml:"left,omitempty"`
	Right  string   `json:"right,omitempty" yaml:"right,omitempty"`
	Output string   `json:"output,omitempty" yaml:"output,omitempty"`
}

// Operand returns the id stored on side s.
func (n Node) Operand(s Side) string {
	if s == Right {
		return n.Right
	}

	return n.Left
}

// WithOperand returns a copy of n with side s set to id.
func (n Node) WithOperand(s Side, id string) Node {
	if s == Right {
		n.Right = id
	} else {
		n.Left = id
	}

	return n
}

// Operands returns the non-empty operand ids that evaluation actually reads:
// only Left for NOT and IDENTITY.
func (n Node) Operands() []string {
	ids := make([]string, 0, 2)
	if n.Left != "" {
		ids = append(ids, n.Left)
	}
	if !n.Op.Unary() && n.Right != "" {
		ids = append(ids, n.Right)
	}

	return ids
}
