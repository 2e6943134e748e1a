// SPDX-License-Identifier: MIT

package variable

import (
	"fmt"

	"github.com/katalvlaran/lvfuzzy/membership"
)

// TrapezoidState is the persisted shape of one trapezoid. Heights are runtime
// state and are not persisted.
type TrapezoidState struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name,omitempty" yaml:"name,omitempty"`
	Color     membership.Color `json:"color" yaml:"color"`
	FootLeft  float64          `json:"footLeft" yaml:"footLeft"`
	PeakLeft  float64          `json:"peakLeft" yaml:"peakLeft"`
	PeakRight float64          `json:"peakRight" yaml:"peakRight"`
	FootRight float64          `json:"footRight" yaml:"footRight"`
}

// State is the persisted form of a Variable.
type State struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name,omitempty" yaml:"name,omitempty"`
	Value       float64          `json:"value" yaml:"value"`
	MaxValue    float64          `json:"maxValue" yaml:"maxValue"`
	Division    int              `json:"division,omitempty" yaml:"division,omitempty"`
	Subdivision int              `json:"subdivision,omitempty" yaml:"subdivision,omitempty"`
	Trapezoids  []TrapezoidState `json:"trapezoids" yaml:"trapezoids"`
}

// State captures the persisted form of v.
func (v *Variable) State() State {
	st := State{
		ID:          v.id,
		Name:        v.name,
		Value:       v.value,
		MaxValue:    v.maxValue,
		Division:    v.division,
		Subdivision: v.subdivision,
		Trapezoids:  make([]TrapezoidState, len(v.sets)),
	}
	for i, t := range v.sets {
		st.Trapezoids[i] = TrapezoidState{
			ID:        t.ID,
			Name:      t.Name,
			Color:     t.Color,
			FootLeft:  t.FootLeft,
			PeakLeft:  t.PeakLeft,
			PeakRight: t.PeakRight,
			FootRight: t.FootRight,
		}
	}

	return st
}

// FromState rebuilds a Variable of the given mode.
//
// Zero Division or Subdivision fall back to the defaults, and empty ids are
// generated, so hand-written definitions may omit them. Input states only
// need their peaks: feet and shoulder bounds are re-derived. Output states
// must carry ordered corners. All heights start at 1.
func FromState(mode Mode, st State, opts ...Option) (*Variable, error) {
	if !finite(st.MaxValue) || !finite(st.Value) {
		return nil, ErrNonFinite
	}
	if st.MaxValue <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadMaxValue, st.MaxValue)
	}
	if st.Subdivision < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSubdivision, st.Subdivision)
	}
	if len(st.Trapezoids) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewTrapezoids, len(st.Trapezoids))
	}

	base := []Option{WithID(st.ID), WithName(st.Name), WithMaxValue(st.MaxValue), WithDivision(st.Division), WithSubdivision(st.Subdivision)}
	v := newBase(mode, append(base, opts...))

	seen := make(map[string]struct{}, len(st.Trapezoids))
	v.sets = make([]membership.Trapezoid, len(st.Trapezoids))
	prevPeak := v.MinValue()
	for i, ts := range st.Trapezoids {
		t := membership.Trapezoid{
			ID:        ts.ID,
			Name:      ts.Name,
			Color:     ts.Color,
			FootLeft:  ts.FootLeft,
			PeakLeft:  ts.PeakLeft,
			PeakRight: ts.PeakRight,
			FootRight: ts.FootRight,
			Height:    1,
		}
		if t.ID == "" {
			t.ID = v.newID()
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}

		if err := t.Validate(); err != nil && mode == Output {
			return nil, fmt.Errorf("%w: trapezoid %d: %v", ErrBadShape, i, err)
		}
		if mode == Input {
			if !finite(t.PeakLeft) || !finite(t.PeakRight) {
				return nil, ErrNonFinite
			}
			// interior peaks must not cross; shoulders are re-pinned below
			if i > 0 && i < len(st.Trapezoids)-1 && (t.PeakLeft > t.PeakRight || t.PeakLeft < prevPeak) {
				return nil, fmt.Errorf("%w: trapezoid %d peaks [%g %g]", ErrBadShape, i, t.PeakLeft, t.PeakRight)
			}
			prevPeak = t.PeakRight
		}
		v.sets[i] = t
	}
	v.normalize()

	if err := v.SetValue(st.Value); err != nil {
		return nil, err
	}

	return v, nil
}
