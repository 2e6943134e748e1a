// SPDX-License-Identifier: MIT

package variable

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvfuzzy/membership"
)

// Sentinel errors for variable operations.
var (
	// ErrIndexOutOfRange indicates a trapezoid index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("variable: trapezoid index out of range")

	// ErrShoulderRemoval indicates an attempt to remove one of the two shoulders.
	ErrShoulderRemoval = errors.New("variable: shoulder trapezoids cannot be removed")

	// ErrFootNotEditable indicates a foot edit on an Input variable, where feet
	// are derived from the neighbouring peaks.
	ErrFootNotEditable = errors.New("variable: feet of an input variable are derived")

	// ErrBadShape indicates corners that are not ordered foot ≤ peak ≤ peak ≤ foot.
	ErrBadShape = errors.New("variable: trapezoid corners out of order")

	// ErrNonFinite indicates a NaN or ±Inf value.
	ErrNonFinite = errors.New("variable: NaN or Inf value")

	// ErrBadMaxValue indicates a non-positive domain scale.
	ErrBadMaxValue = errors.New("variable: maxValue must be > 0")

	// ErrBadSubdivision indicates a sample count below one.
	ErrBadSubdivision = errors.New("variable: subdivision must be >= 1")

	// ErrTooFewTrapezoids indicates a state without both shoulders.
	ErrTooFewTrapezoids = errors.New("variable: at least two trapezoids required")

	// ErrTrapezoidNotFound indicates an unknown trapezoid id or name.
	ErrTrapezoidNotFound = errors.New("variable: trapezoid not found")

	// ErrDuplicateID indicates two trapezoids with the same id.
	ErrDuplicateID = errors.New("variable: duplicate trapezoid id")
)

// Defaults mirrored from the editor the engine was extracted from.
const (
	DefaultMaxValue    = 100.0
	DefaultDivision    = 10
	DefaultSubdivision = 20

	// shoulderSpan is the share of maxValue covered by a fresh input shoulder's flat top.
	shoulderSpan = 0.2

	// outputExtension widens an output axis by half its scale on both sides.
	outputExtension = 0.5
)

// Mode selects the editing rules of a Variable.
type Mode int

const (
	// Input is a fuzzification axis: feet are derived from neighbours.
	Input Mode = iota

	// Output is a defuzzification axis: feet are independently editable.
	Output
)

// String returns "input" or "output".
func (m Mode) String() string {
	switch m {
	case Input:
		return "input"
	case Output:
		return "output"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Input && m != Output {
		return nil, fmt.Errorf("variable: unknown mode %d", int(m))
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "input", "":
		*m = Input
	case "output":
		*m = Output
	default:
		return fmt.Errorf("variable: unknown mode %q", string(b))
	}

	return nil
}

// Activation is one contribution returned by Fuzzify.
type Activation struct {
	Index int     // position of the trapezoid in the variable
	ID    string  // trapezoid id
	Value float64 // membership degree in [0, height]
}

// Defuzzification is the result of Variable.Defuzzify.
type Defuzzification struct {
	// Centroid is the barycenter of the outline; Centroid.X is the crisp output.
	Centroid membership.Point

	// Outline is the closed sample polygon, left to right, starting and
	// ending on the baseline.
	Outline []membership.Point

	// Baseline is Outline projected onto y = 0.
	Baseline []membership.Point

	// Degenerate is set when the outline has no area; Centroid then holds
	// the midpoint of [MinValue(), MaxValue()].
	Degenerate bool
}

// Option configures a Variable at construction.
type Option func(*Variable)

// WithID sets the variable id. An empty id keeps the generated one.
func WithID(id string) Option {
	return func(v *Variable) {
		if id != "" {
			v.id = id
		}
	}
}

// WithName sets the human-readable name.
func WithName(name string) Option {
	return func(v *Variable) { v.name = name }
}

// WithMaxValue sets the domain scale. Non-positive values are ignored.
func WithMaxValue(max float64) Option {
	return func(v *Variable) {
		if max > 0 {
			v.maxValue = max
		}
	}
}

// WithDivision sets the presentation granularity. Values < 1 are ignored.
func WithDivision(n int) Option {
	return func(v *Variable) {
		if n >= 1 {
			v.division = n
		}
	}
}

// WithSubdivision sets the defuzzification sample count. Values < 1 are ignored.
func WithSubdivision(n int) Option {
	return func(v *Variable) {
		if n >= 1 {
			v.subdivision = n
		}
	}
}

// WithIDGenerator replaces the uuid-based generator used for new trapezoids.
// Passing nil has no effect.
func WithIDGenerator(fn func() string) Option {
	return func(v *Variable) {
		if fn != nil {
			v.newID = fn
		}
	}
}

// Variable is an ordered collection of trapezoids on one axis.
type Variable struct {
	id   string
	name string
	mode Mode

	value       float64 // current crisp input
	maxValue    float64 // domain scale
	division    int     // presentation only
	subdivision int     // defuzzification samples

	minExtension float64
	maxExtension float64

	// sets[0] and sets[len-1] are the shoulders.
	sets []membership.Trapezoid

	newID func() string
}

// palette colours interior trapezoids in insertion order.
var palette = [...]membership.Color{
	{R: 0.25, G: 0.5, B: 1, A: 1},
	{R: 1, G: 0.75, B: 0.1, A: 1},
	{R: 0.6, G: 0.3, B: 0.9, A: 1},
	{R: 0.1, G: 0.8, B: 0.8, A: 1},
	{R: 0.9, G: 0.4, B: 0.6, A: 1},
}

var (
	leftShoulderColor  = membership.Color{R: 1, A: 1}
	rightShoulderColor = membership.Color{G: 1, A: 1}
)

func defaultIDGenerator() string { return uuid.NewString() }
