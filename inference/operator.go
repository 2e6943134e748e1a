// SPDX-License-Identifier: MIT

package inference

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperator indicates an operator name or code outside the four known ones.
var ErrUnknownOperator = errors.New("inference: unknown operator")

// Operator selects how a node combines its operands. The numeric values are
// part of the persisted format.
type Operator int

const (
	And      Operator = 1 // intersection: min
	Or       Operator = 2 // union: max
	Not      Operator = 3 // complement of the left operand
	Identity Operator = 4 // left operand unchanged
)

var operatorNames = map[Operator]string{
	And:      "and",
	Or:       "or",
	Not:      "not",
	Identity: "identity",
}

// String returns the lower-case operator name.
func (op Operator) String() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}

	return fmt.Sprintf("Operator(%d)", int(op))
}

// Valid reports whether op is one of the four known operators.
func (op Operator) Valid() bool {
	_, ok := operatorNames[op]

	return ok
}

// Unary reports whether op ignores its right operand.
func (op Operator) Unary() bool { return op == Not || op == Identity }

// ParseOperator accepts the names returned by String, case-insensitively.
// "id" and "i" are accepted for Identity.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "and":
		return And, nil
	case "or":
		return Or, nil
	case "not":
		return Not, nil
	case "identity", "id", "i":
		return Identity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (op Operator) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperator, int(op))
	}

	return []byte(op.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Operator) UnmarshalText(b []byte) error {
	parsed, err := ParseOperator(string(b))
	if err != nil {
		return err
	}
	*op = parsed

	return nil
}
