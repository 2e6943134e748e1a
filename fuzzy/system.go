// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// System is one fuzzy-logic inference system: input variables, one output
// variable and the inference nodes between them. The zero value is
// uninitialized; use New or FromSnapshot.
type System struct {
	id   string
	name string

	inputs []*variable.Variable
	output *variable.Variable
	nodes  []inference.Node

	evaluate bool

	registry *Registry
	log      *zap.Logger
	observer Observer
	ev       inference.Evaluator
	newID    func() string

	inputOpts []variable.Option
}

func newUUID() string { return uuid.NewString() }

// New builds a system with one input variable and the output variable.
// Evaluate mode starts on. With WithRegistry the system is registered
// before New returns.
func New(opts ...Option) (*System, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := newSystem(cfg)
	s.inputs = []*variable.Variable{variable.NewInput(s.inputOptions()...)}
	s.output = variable.NewOutput(s.outputOptions(cfg)...)

	if err := s.attach(cfg.registry); err != nil {
		return nil, err
	}

	return s, nil
}

func newSystem(cfg config) *System {
	s := &System{
		id:        cfg.id,
		name:      cfg.name,
		evaluate:  true,
		log:       cfg.log,
		observer:  cfg.observer,
		ev:        inference.NewEvaluator(inference.WithMaxDepth(cfg.maxDepth)),
		newID:     cfg.newID,
		inputOpts: cfg.inputOpts,
	}
	if s.id == "" {
		s.id = s.newID()
	}

	return s
}

func (s *System) inputOptions(extra ...variable.Option) []variable.Option {
	opts := []variable.Option{variable.WithIDGenerator(s.newID)}
	opts = append(opts, s.inputOpts...)

	return append(opts, extra...)
}

func (s *System) outputOptions(cfg config) []variable.Option {
	opts := []variable.Option{variable.WithIDGenerator(s.newID), variable.WithName("output")}
	if cfg.subdivision > 0 {
		opts = append(opts, variable.WithSubdivision(cfg.subdivision))
	}

	return append(opts, cfg.outputOpts...)
}

func (s *System) attach(r *Registry) error {
	if r == nil {
		return nil
	}
	if err := r.Register(s); err != nil {
		return err
	}
	s.registry = r

	return nil
}

func (s *System) check() error {
	if s == nil || s.output == nil {
		return ErrUninitialized
	}

	return nil
}

// ID returns the stable identifier.
func (s *System) ID() string { return s.id }

// Name returns the human-readable name.
func (s *System) Name() string { return s.name }

// SetName renames the system.
func (s *System) SetName(name string) { s.name = name }

// Registry returns the registry the system was created with, or nil.
func (s *System) Registry() *Registry { return s.registry }

// SetEvaluate switches evaluate mode. With it off, Evaluate resets every
// output height to 1.
func (s *System) SetEvaluate(on bool) { s.evaluate = on }

// Evaluating reports whether evaluate mode is on.
func (s *System) Evaluating() bool { return s.evaluate }

// --- variables ---

// AddInput appends a new input variable.
func (s *System) AddInput(opts ...variable.Option) (*variable.Variable, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	v := variable.NewInput(s.inputOptions(opts...)...)
	s.inputs = append(s.inputs, v)

	return v, nil
}

// RemoveInput deletes the input variable with the given id. Nodes reading
// its trapezoids keep their operand ids, which then resolve to 0.
func (s *System) RemoveInput(id string) error {
	if err := s.check(); err != nil {
		return err
	}
	i := s.inputIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrVariableNotFound, id)
	}
	if len(s.inputs) == 1 {
		return ErrLastInput
	}
	s.inputs = append(s.inputs[:i], s.inputs[i+1:]...)

	return nil
}

// NumInputs returns the number of input variables.
func (s *System) NumInputs() int { return len(s.inputs) }

// Input returns the input variable at index i.
func (s *System) Input(i int) (*variable.Variable, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(s.inputs) {
		return nil, fmt.Errorf("%w: index %d", ErrVariableNotFound, i)
	}

	return s.inputs[i], nil
}

// InputByID returns the input variable with the given id.
func (s *System) InputByID(id string) (*variable.Variable, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if i := s.inputIndex(id); i >= 0 {
		return s.inputs[i], nil
	}

	return nil, fmt.Errorf("%w: id %q", ErrVariableNotFound, id)
}

// OutputVariable returns the output variable; nil on a zero-value System.
func (s *System) OutputVariable() *variable.Variable {
	if s == nil {
		return nil
	}

	return s.output
}

// VariableByName searches the inputs, then the output variable.
func (s *System) VariableByName(name string) (*variable.Variable, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	for _, v := range s.inputs {
		if v.Name() == name {
			return v, nil
		}
	}
	if s.output.Name() == name {
		return s.output, nil
	}

	return nil, fmt.Errorf("%w: name %q", ErrVariableNotFound, name)
}

// TrapezoidByName returns the trapezoid named trapezoidName on the variable
// named variableName.
func (s *System) TrapezoidByName(variableName, trapezoidName string) (membership.Trapezoid, error) {
	v, err := s.VariableByName(variableName)
	if err != nil {
		return membership.Trapezoid{}, err
	}

	return v.TrapezoidByName(trapezoidName)
}

// SetValue assigns the crisp value of the variable named variableName.
func (s *System) SetValue(variableName string, x float64) error {
	v, err := s.VariableByName(variableName)
	if err != nil {
		return err
	}

	return v.SetValue(x)
}

func (s *System) inputIndex(id string) int {
	for i, v := range s.inputs {
		if v.ID() == id {
			return i
		}
	}

	return -1
}

// --- nodes ---

// AddNode appends a node with the given operator and no operands.
func (s *System) AddNode(name string, op inference.Operator) (inference.Node, error) {
	if err := s.check(); err != nil {
		return inference.Node{}, err
	}
	if !op.Valid() {
		return inference.Node{}, fmt.Errorf("%w: %d", inference.ErrUnknownOperator, int(op))
	}
	n := inference.Node{ID: s.newID(), Name: name, Op: op}
	s.nodes = append(s.nodes, n)

	return n, nil
}

// RemoveNode deletes the node with the given id. Operands naming it turn
// dangling and resolve to 0.
func (s *System) RemoveNode(id string) error {
	if err := s.check(); err != nil {
		return err
	}
	i := s.nodeIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrNodeNotFound, id)
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)

	return nil
}

// NumNodes returns the number of nodes.
func (s *System) NumNodes() int { return len(s.nodes) }

// Node returns the node at index i.
func (s *System) Node(i int) (inference.Node, error) {
	if i < 0 || i >= len(s.nodes) {
		return inference.Node{}, fmt.Errorf("%w: index %d", ErrNodeNotFound, i)
	}

	return s.nodes[i], nil
}

// Nodes returns a copy of every node in evaluation order.
func (s *System) Nodes() []inference.Node {
	out := make([]inference.Node, len(s.nodes))
	copy(out, s.nodes)

	return out
}

// NodeByID returns the node with the given id.
func (s *System) NodeByID(id string) (inference.Node, error) {
	if i := s.nodeIndex(id); i >= 0 {
		return s.nodes[i], nil
	}

	return inference.Node{}, fmt.Errorf("%w: id %q", ErrNodeNotFound, id)
}

// NodeByName returns the first node with the given name.
func (s *System) NodeByName(name string) (inference.Node, error) {
	for _, n := range s.nodes {
		if n.Name == name {
			return n, nil
		}
	}

	return inference.Node{}, fmt.Errorf("%w: name %q", ErrNodeNotFound, name)
}

// SetNodeName renames the node with the given id.
func (s *System) SetNodeName(id, name string) error {
	i := s.nodeIndex(id)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrNodeNotFound, id)
	}
	s.nodes[i].Name = name

	return nil
}

// SetTarget points the node at an output trapezoid; "" detaches it.
// Becoming the writer of a trapezoid makes the node part of this system's
// output, so a node reading this system (directly or through others) is
// rejected with ErrCycleReference.
func (s *System) SetTarget(nodeID, trapezoidID string) error {
	if err := s.check(); err != nil {
		return err
	}
	i := s.nodeIndex(nodeID)
	if i < 0 {
		return fmt.Errorf("%w: id %q", ErrNodeNotFound, nodeID)
	}
	if trapezoidID != "" && s.output.IndexOf(trapezoidID) < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, trapezoidID)
	}
	prev := s.nodes[i]
	s.nodes[i].Output = trapezoidID

	return s.rejectCycle(i, prev)
}

func (s *System) nodeIndex(id string) int {
	for i := range s.nodes {
		if s.nodes[i].ID == id {
			return i
		}
	}

	return -1
}

// inputTrapezoid reports whether id names a trapezoid of an input variable.
func (s *System) inputTrapezoid(id string) (*variable.Variable, bool) {
	for _, v := range s.inputs {
		if v.IndexOf(id) >= 0 {
			return v, true
		}
	}

	return nil, false
}

// lookupSystem resolves a system id: the system itself, or a system of its
// registry.
func (s *System) lookupSystem(id string) (*System, bool) {
	if id == s.id {
		return s, true
	}
	if s.registry == nil {
		return nil, false
	}

	return s.registry.Lookup(id)
}
