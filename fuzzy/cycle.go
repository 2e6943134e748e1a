// SPDX-License-Identifier: MIT

package fuzzy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/wiring"
)

// Vertex ids of the dependency graph. Node ids are namespaced by their
// system so two systems never collide.
func systemVertex(id string) string { return "system:" + id }
func nodeVertex(sysID, nodeID string) string { return "node:" + sysID + "/" + nodeID }

// dependencyGraph builds the read graph reachable from s: every system
// points at the nodes that write its output heights (the last node per
// output trapezoid, as Evaluate does), every node at the nodes and systems
// it reads. Operands resolve in evaluation order (node, input trapezoid,
// system); trapezoids and unknown ids are leaves and are left out.
func (s *System) dependencyGraph() *wiring.Graph {
	g := wiring.New()
	done := make(map[string]bool)

	var add func(sys *System)
	add = func(sys *System) {
		if done[sys.id] {
			return
		}
		done[sys.id] = true

		sv := systemVertex(sys.id)
		_ = g.AddVertex(sv)
		for _, w := range sys.writers() {
			_ = g.AddEdge(sv, nodeVertex(sys.id, w))
		}
		for _, n := range sys.nodes {
			nv := nodeVertex(sys.id, n.ID)
			_ = g.AddVertex(nv)
			for _, op := range n.Operands() {
				if sys.nodeIndex(op) >= 0 {
					_ = g.AddEdge(nv, nodeVertex(sys.id, op))
					continue
				}
				if _, ok := sys.inputTrapezoid(op); ok {
					continue
				}
				if foreign, ok := sys.lookupSystem(op); ok && foreign.check() == nil {
					_ = g.AddEdge(nv, systemVertex(foreign.id))
					add(foreign)
				}
			}
		}
	}
	add(s)

	return g
}

// writers returns the ids of the nodes Evaluate uses: for each output
// trapezoid the last node targeting it.
func (s *System) writers() []string {
	var ids []string
	for _, t := range s.output.Trapezoids() {
		for j := len(s.nodes) - 1; j >= 0; j-- {
			if s.nodes[j].Output == t.ID {
				ids = append(ids, s.nodes[j].ID)
				break
			}
		}
	}

	return ids
}

// IsCycleReference reports whether the node with the given id reads itself
// through any chain of nodes, including chains crossing into other systems.
// Unknown ids report false.
func (s *System) IsCycleReference(nodeID string) bool {
	if s.check() != nil || s.nodeIndex(nodeID) < 0 {
		return false
	}
	cycle, err := s.dependencyGraph().FindCycle(nodeVertex(s.id, nodeID))

	return err == nil && cycle != nil
}

// isSystemCycle reports whether reading s ends up reading s again.
func (s *System) isSystemCycle() bool {
	sv := systemVertex(s.id)
	ok, err := s.dependencyGraph().Reaches(sv, sv)

	return err == nil && ok
}

// resolvable reports whether id names something an operand can read.
func (s *System) resolvable(id string) bool {
	if s.nodeIndex(id) >= 0 {
		return true
	}
	if _, ok := s.inputTrapezoid(id); ok {
		return true
	}
	_, ok := s.lookupSystem(id)

	return ok
}

// Connect sets one operand of a node. An empty operandID clears the side.
// An operand that would make the node read itself is rejected with
// ErrCycleReference and the node is left unchanged.
func (s *System) Connect(nodeID string, side inference.Side, operandID string) error {
	if err := s.check(); err != nil {
		return err
	}
	i := s.nodeIndex(nodeID)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrNodeNotFound, nodeID)
	}
	if operandID != "" && !s.resolvable(operandID) {
		return fmt.Errorf("%w: %q", ErrUnknownOperand, operandID)
	}

	prev := s.nodes[i]
	s.nodes[i] = prev.WithOperand(side, operandID)

	return s.rejectCycle(i, prev)
}

// SetOperator changes the operator of a node. Switching a unary node to AND
// or OR starts reading its right operand, so the same cycle check applies.
func (s *System) SetOperator(nodeID string, op inference.Operator) error {
	if err := s.check(); err != nil {
		return err
	}
	if !op.Valid() {
		return fmt.Errorf("%w: %d", inference.ErrUnknownOperator, int(op))
	}
	i := s.nodeIndex(nodeID)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrNodeNotFound, nodeID)
	}

	prev := s.nodes[i]
	s.nodes[i].Op = op

	return s.rejectCycle(i, prev)
}

// rejectCycle restores prev at index i when the edited node is now on a cycle.
func (s *System) rejectCycle(i int, prev inference.Node) error {
	if !s.IsCycleReference(s.nodes[i].ID) {
		return nil
	}
	s.nodes[i] = prev
	s.log.Debug("edit rejected: cycle reference",
		zap.String("system", s.id),
		zap.String("node", prev.ID),
	)

	return fmt.Errorf("%w: node %q", ErrCycleReference, prev.Name)
}

// Cycles lists every cycle of the read graph reachable from s, each as a
// closed sequence of vertex labels ("system:<id>", "node:<system>/<id>").
func (s *System) Cycles() [][]string {
	if s.check() != nil {
		return nil
	}

	return s.dependencyGraph().DetectCycles()
}

// Validate checks the wiring and joins every problem found:
//
//   - ErrDuplicateOutputTarget: several nodes drive one output trapezoid
//     (Evaluate still lets the last one win).
//   - ErrInvalidTarget: a node targets something other than an output trapezoid.
//   - ErrUnknownOperand: an operand that resolves to nothing.
//   - ErrCycleReference: a cycle through nodes or systems.
//
// Match individual problems with errors.Is; multierr.Errors splits them.
func (s *System) Validate() error {
	return s.ValidateContext(context.Background())
}

// ValidateContext is Validate with a context that cancels the cycle search
// of large graphs. A cancelled search returns ctx.Err() alone.
func (s *System) ValidateContext(ctx context.Context) error {
	if err := s.check(); err != nil {
		return err
	}

	var errs error
	owner := make(map[string]string, len(s.nodes))
	for _, n := range s.nodes {
		if n.Output != "" {
			if s.output.IndexOf(n.Output) < 0 {
				errs = multierr.Append(errs, fmt.Errorf("%w: node %q targets %q", ErrInvalidTarget, n.Name, n.Output))
			} else if first, dup := owner[n.Output]; dup {
				errs = multierr.Append(errs, fmt.Errorf("%w: %q by nodes %q and %q", ErrDuplicateOutputTarget, n.Output, first, n.Name))
			} else {
				owner[n.Output] = n.Name
			}
		}
		for _, op := range n.Operands() {
			if !s.resolvable(op) {
				errs = multierr.Append(errs, fmt.Errorf("%w: node %q reads %q", ErrUnknownOperand, n.Name, op))
			}
		}
	}

	g := s.dependencyGraph()
	s.log.Debug("validating read graph",
		zap.String("system", s.id),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)
	_, err := g.TopologicalSort(wiring.WithCancelContext(ctx))
	switch {
	case errors.Is(err, wiring.ErrCycleDetected):
		// the sort stops at the first back edge; list them all
		for _, c := range g.DetectCycles() {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", ErrCycleReference, strings.Join(c, " -> ")))
		}
	case err != nil:
		return err
	}

	return errs
}
