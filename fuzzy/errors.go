// SPDX-License-Identifier: MIT

package fuzzy

import "errors"

// Sentinel errors for system editing, evaluation and the registry.
var (
	// ErrUninitialized indicates a zero-value System; build one with New.
	ErrUninitialized = errors.New("fuzzy: system not initialized")

	// ErrNilSystem indicates a nil *System passed to the registry.
	ErrNilSystem = errors.New("fuzzy: system is nil")

	// ErrAlreadyRegistered indicates a second system with the same id.
	ErrAlreadyRegistered = errors.New("fuzzy: system id already registered")

	// ErrVariableNotFound indicates an unknown variable id, name or index.
	ErrVariableNotFound = errors.New("fuzzy: variable not found")

	// ErrNodeNotFound indicates an unknown node id, name or index.
	ErrNodeNotFound = errors.New("fuzzy: node not found")

	// ErrLastInput indicates an attempt to remove the only input variable.
	ErrLastInput = errors.New("fuzzy: a system needs at least one input variable")

	// ErrUnknownOperand indicates an operand id that names no node, input
	// trapezoid or system.
	ErrUnknownOperand = errors.New("fuzzy: unknown operand")

	// ErrInvalidTarget indicates an output id that is not a trapezoid of the
	// output variable.
	ErrInvalidTarget = errors.New("fuzzy: target is not an output trapezoid")

	// ErrCycleReference indicates an edit that would make a node read itself.
	ErrCycleReference = errors.New("fuzzy: cycle reference")

	// ErrDuplicateOutputTarget indicates two nodes driving the same output trapezoid.
	ErrDuplicateOutputTarget = errors.New("fuzzy: output trapezoid targeted by several nodes")

	// ErrDuplicateID indicates an id used twice within one system definition.
	ErrDuplicateID = errors.New("fuzzy: duplicate id")
)
