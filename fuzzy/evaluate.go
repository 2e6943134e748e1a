// SPDX-License-Identifier: MIT

package fuzzy

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// source resolves operands of one system for the evaluator.
type source struct{ s *System }

func (src source) Node(id string) (inference.Node, bool) {
	if i := src.s.nodeIndex(id); i >= 0 {
		return src.s.nodes[i], true
	}

	return inference.Node{}, false
}

func (src source) Membership(id string) (float64, bool) {
	v, ok := src.s.inputTrapezoid(id)
	if !ok {
		return 0, false
	}

	return v.Membership(id)
}

func (src source) System(id string) (inference.Remote, bool) {
	sys, ok := src.s.lookupSystem(id)
	if !ok {
		return nil, false
	}

	return remote{from: src.s, to: sys}, true
}

// remote is a system read by a node of from.
type remote struct{ from, to *System }

// OutputAt returns the normalized output of r.to computed as part of a chain
// already depth nodes deep. A cycle met inside r.to only makes the result a
// Cycle when reader itself is on a loop; otherwise the cyclic writers keep
// height 1, as they do in Output.
func (r remote) OutputAt(reader inference.Node, depth int) inference.Result {
	if r.to.check() != nil {
		return inference.Value(0)
	}
	p := r.to.evaluateAt(depth)
	if p.cycles > 0 && r.from.IsCycleReference(reader.ID) {
		return inference.Cycle()
	}
	res := r.to.output.Defuzzify()

	return inference.Value(res.Centroid.X / r.to.output.MaxNominal())
}

// pass counts what one evaluation pass did.
type pass struct {
	nodes  int
	cycles int
}

// Evaluate assigns the height of every output trapezoid. With evaluate mode
// on, the last node targeting a trapezoid sets its height; a trapezoid with
// no node, or whose node meets a cycle, keeps height 1. With evaluate mode
// off every height is reset to 1.
func (s *System) Evaluate() error {
	if err := s.check(); err != nil {
		return err
	}
	if !s.evaluate {
		s.output.ResetHeights()
		return nil
	}
	s.evaluateAt(0)

	return nil
}

// evaluateAt runs one pass with the node chain already depth deep.
//
// Steps:
//  1. Reset the height of the output trapezoid to 1.
//  2. Scan the nodes backwards; the first one targeting it is the last one in
//     order and wins.
//  3. Evaluate it; a Cycle leaves the height at 1.
func (s *System) evaluateAt(depth int) pass {
	var p pass
	src := source{s}

	for i, t := range s.output.Trapezoids() {
		// 1) default
		_ = s.output.SetHeight(i, 1)

		// 2) last writer
		for j := len(s.nodes) - 1; j >= 0; j-- {
			n := s.nodes[j]
			if n.Output != t.ID {
				continue
			}

			// 3) evaluate
			p.nodes++
			r := s.ev.EvaluateAt(n, src, depth)
			if v, ok := r.Float(); ok {
				_ = s.output.SetHeight(i, v)
			} else {
				p.cycles++
				s.log.Debug("cycle reference during evaluation",
					zap.String("system", s.id),
					zap.String("node", n.ID),
					zap.String("name", n.Name),
					zap.Int("depth", depth),
				)
			}

			break
		}
	}

	return p
}

// Output forces one evaluation pass regardless of evaluate mode,
// defuzzifies and returns the centroid divided by the output maxValue.
// The result may leave [0, 1] because the output domain is extended.
func (s *System) Output() (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	p := s.evaluateAt(0)
	res := s.output.Defuzzify()
	out := res.Centroid.X / s.output.MaxNominal()

	if res.Degenerate {
		s.log.Debug("degenerate output shape", zap.String("system", s.id))
	}
	s.observer.Evaluated(Report{
		SystemID:   s.id,
		SystemName: s.name,
		Output:     out,
		Raw:        res.Centroid.X,
		Degenerate: res.Degenerate,
		Nodes:      p.nodes,
		Cycles:     p.cycles,
	})

	return out, nil
}

// Defuzzify returns the full centroid computation of the output variable
// at its current heights.
func (s *System) Defuzzify() (variable.Defuzzification, error) {
	if err := s.check(); err != nil {
		return variable.Defuzzification{}, err
	}

	return s.output.Defuzzify(), nil
}

// Activation returns the height the last Evaluate or Output assigned to the
// output trapezoid with the given id.
func (s *System) Activation(trapezoidID string) (float64, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	t, err := s.output.TrapezoidByID(trapezoidID)
	if err != nil {
		return 0, err
	}

	return t.Height, nil
}

// EvaluateNode evaluates one node from the root. Its target height is not assigned.
func (s *System) EvaluateNode(nodeID string) (inference.Result, error) {
	if err := s.check(); err != nil {
		return inference.Result{}, err
	}
	n, err := s.NodeByID(nodeID)
	if err != nil {
		return inference.Result{}, err
	}

	return s.ev.Evaluate(n, source{s}), nil
}

var _ inference.Remote = remote{}
