// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// Snapshot is the persisted form of a System: ids, names, shapes, wiring,
// colours and values. Output heights are runtime state and are not part of it.
type Snapshot struct {
	ID       string           `json:"id" yaml:"id"`
	Name     string           `json:"name,omitempty" yaml:"name,omitempty"`
	Evaluate bool             `json:"evaluate" yaml:"evaluate"`
	Inputs   []variable.State `json:"inputs" yaml:"inputs"`
	Output   variable.State   `json:"output" yaml:"output"`
	Nodes    []inference.Node `json:"nodes,omitempty" yaml:"nodes,omitempty"`
}

// Snapshot captures the persisted form of s.
func (s *System) Snapshot() (Snapshot, error) {
	if err := s.check(); err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		ID:       s.id,
		Name:     s.name,
		Evaluate: s.evaluate,
		Inputs:   make([]variable.State, len(s.inputs)),
		Output:   s.output.State(),
		Nodes:    s.Nodes(),
	}
	for i, v := range s.inputs {
		snap.Inputs[i] = v.State()
	}

	return snap, nil
}

// FromSnapshot rebuilds a System. Options are applied on top of the
// snapshot; WithID overrides the persisted id. Every id (system, variables,
// trapezoids, nodes) must be unique; empty ids are generated. Operands are
// not resolved here: dangling ids evaluate to 0 and are reported by Validate.
func FromSnapshot(snap Snapshot, opts ...Option) (*System, error) {
	cfg := defaultConfig()
	cfg.id = snap.ID
	cfg.name = snap.Name
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(snap.Inputs) == 0 {
		return nil, fmt.Errorf("%w: no input variables", ErrVariableNotFound)
	}

	s := newSystem(cfg)
	s.evaluate = snap.Evaluate
	seen := map[string]string{s.id: "system"}
	claim := func(id, what string) error {
		if prev, dup := seen[id]; dup {
			return fmt.Errorf("%w: %q used by %s and %s", ErrDuplicateID, id, prev, what)
		}
		seen[id] = what

		return nil
	}

	restore := func(mode variable.Mode, st variable.State, what string, extra []variable.Option) (*variable.Variable, error) {
		base := append([]variable.Option{variable.WithIDGenerator(s.newID)}, extra...)
		v, err := variable.FromState(mode, st, base...)
		if err != nil {
			return nil, fmt.Errorf("fuzzy: %s %q: %w", what, st.Name, err)
		}
		if err = claim(v.ID(), what+" "+v.Name()); err != nil {
			return nil, err
		}
		for _, t := range v.Trapezoids() {
			if err = claim(t.ID, "trapezoid "+t.Name); err != nil {
				return nil, err
			}
		}

		return v, nil
	}

	for _, st := range snap.Inputs {
		v, err := restore(variable.Input, st, "input", nil)
		if err != nil {
			return nil, err
		}
		s.inputs = append(s.inputs, v)
	}

	var outOpts []variable.Option
	if cfg.subdivision > 0 {
		outOpts = append(outOpts, variable.WithSubdivision(cfg.subdivision))
	}
	out, err := restore(variable.Output, snap.Output, "output", outOpts)
	if err != nil {
		return nil, err
	}
	s.output = out

	s.nodes = make([]inference.Node, 0, len(snap.Nodes))
	for _, n := range snap.Nodes {
		if !n.Op.Valid() {
			return nil, fmt.Errorf("fuzzy: node %q: %w: %d", n.Name, inference.ErrUnknownOperator, int(n.Op))
		}
		if n.ID == "" {
			n.ID = s.newID()
		}
		if err = claim(n.ID, "node "+n.Name); err != nil {
			return nil, err
		}
		s.nodes = append(s.nodes, n)
	}

	if err = s.attach(cfg.registry); err != nil {
		return nil, err
	}

	return s, nil
}
