// SPDX-License-Identifier: MIT

package variable

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfuzzy/membership"
)

// NewInput builds a fuzzification axis with its two shoulders:
//
//	left  peaks [Min, Min+0.2*max], foot on the right shoulder's PeakLeft
//	right peaks [Max-0.2*max, Max], foot on the left shoulder's PeakRight
//
// The crisp value starts at 0.
func NewInput(opts ...Option) *Variable {
	v := newBase(Input, opts)

	min, max := v.MinValue(), v.MaxValue()
	v.sets = []membership.Trapezoid{
		v.newTrapezoid("Left", leftShoulderColor, min, min, min+v.maxValue*shoulderSpan, 0),
		v.newTrapezoid("Right", rightShoulderColor, 0, max-v.maxValue*shoulderSpan, max, max),
	}
	v.relink()

	return v
}

// NewOutput builds a defuzzification axis with its two shoulders. The domain
// is extended by half of maxValue on both sides; the left shoulder is a
// triangle peaking at 0, the right one a triangle peaking at maxValue, each
// with its feet halfway into the extension.
func NewOutput(opts ...Option) *Variable {
	v := newBase(Output, opts)

	lf := v.MinValue() * outputExtension
	rf := v.maxValue + (v.MaxValue()-v.maxValue)*outputExtension
	rn := v.maxValue - (v.MaxValue()-v.maxValue)*outputExtension
	v.sets = []membership.Trapezoid{
		v.newTrapezoid("Left", leftShoulderColor, lf, 0, 0, math.Abs(lf)),
		v.newTrapezoid("Right", rightShoulderColor, rn, v.maxValue, v.maxValue, rf),
	}

	return v
}

func newBase(mode Mode, opts []Option) *Variable {
	v := &Variable{
		mode:        mode,
		maxValue:    DefaultMaxValue,
		division:    DefaultDivision,
		subdivision: DefaultSubdivision,
		newID:       defaultIDGenerator,
	}
	if mode == Output {
		v.minExtension = outputExtension
		v.maxExtension = outputExtension
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.id == "" {
		v.id = v.newID()
	}

	return v
}

func (v *Variable) newTrapezoid(name string, c membership.Color, fl, pl, pr, fr float64) membership.Trapezoid {
	return membership.Trapezoid{
		ID:        v.newID(),
		Name:      name,
		Color:     c,
		FootLeft:  fl,
		PeakLeft:  pl,
		PeakRight: pr,
		FootRight: fr,
		Height:    1,
	}
}

// ID returns the stable identifier.
func (v *Variable) ID() string { return v.id }

// Name returns the human-readable name.
func (v *Variable) Name() string { return v.name }

// SetName renames the variable.
func (v *Variable) SetName(name string) { v.name = name }

// Mode reports Input or Output.
func (v *Variable) Mode() Mode { return v.mode }

// Value returns the current crisp input.
func (v *Variable) Value() float64 { return v.value }

// MaxNominal returns the domain scale (maxValue).
func (v *Variable) MaxNominal() float64 { return v.maxValue }

// Division returns the presentation granularity.
func (v *Variable) Division() int { return v.division }

// Subdivision returns the defuzzification sample count.
func (v *Variable) Subdivision() int { return v.subdivision }

// MinValue is the lower bound of the extended domain.
func (v *Variable) MinValue() float64 { return -v.maxValue * v.minExtension }

// MaxValue is the upper bound of the extended domain.
func (v *Variable) MaxValue() float64 { return v.maxValue * (1 + v.maxExtension) }

// Len returns the number of trapezoids (always ≥ 2).
func (v *Variable) Len() int { return len(v.sets) }

// Trapezoid returns a copy of the trapezoid at i.
func (v *Variable) Trapezoid(i int) (membership.Trapezoid, error) {
	if i < 0 || i >= len(v.sets) {
		return membership.Trapezoid{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return v.sets[i], nil
}

// Trapezoids returns a copy of all trapezoids, shoulders first and last.
func (v *Variable) Trapezoids() []membership.Trapezoid {
	out := make([]membership.Trapezoid, len(v.sets))
	copy(out, v.sets)

	return out
}

// IndexOf returns the position of the trapezoid with the given id, or -1.
func (v *Variable) IndexOf(id string) int {
	for i := range v.sets {
		if v.sets[i].ID == id {
			return i
		}
	}

	return -1
}

// TrapezoidByID looks a trapezoid up by id.
func (v *Variable) TrapezoidByID(id string) (membership.Trapezoid, error) {
	if i := v.IndexOf(id); i >= 0 {
		return v.sets[i], nil
	}

	return membership.Trapezoid{}, fmt.Errorf("%w: id %q", ErrTrapezoidNotFound, id)
}

// TrapezoidByName returns the first trapezoid with the given name.
func (v *Variable) TrapezoidByName(name string) (membership.Trapezoid, error) {
	for i := range v.sets {
		if v.sets[i].Name == name {
			return v.sets[i], nil
		}
	}

	return membership.Trapezoid{}, fmt.Errorf("%w: name %q", ErrTrapezoidNotFound, name)
}

// SetValue assigns the crisp input. Input variables clamp it to
// [0, maxValue]; output variables keep it unclamped.
func (v *Variable) SetValue(x float64) error {
	if !finite(x) {
		return ErrNonFinite
	}
	if v.mode == Input {
		x = clamp(x, 0, v.maxValue)
	}
	v.value = x

	return nil
}

// SetMaxValue rescales the domain. Corners falling outside the new domain
// are pulled back inside and the shoulders are re-anchored.
func (v *Variable) SetMaxValue(max float64) error {
	if !finite(max) {
		return ErrNonFinite
	}
	if max <= 0 {
		return fmt.Errorf("%w: %g", ErrBadMaxValue, max)
	}
	v.maxValue = max
	v.normalize()
	if v.mode == Input {
		v.value = clamp(v.value, 0, v.maxValue)
	}

	return nil
}

// SetDivision sets the presentation granularity.
func (v *Variable) SetDivision(n int) error {
	if n < 1 {
		return fmt.Errorf("variable: division must be >= 1, got %d", n)
	}
	v.division = n

	return nil
}

// SetSubdivision sets the number of uniform defuzzification samples.
func (v *Variable) SetSubdivision(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrBadSubdivision, n)
	}
	v.subdivision = n

	return nil
}

// SetTrapezoidName renames the trapezoid at i.
func (v *Variable) SetTrapezoidName(i int, name string) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.sets[i].Name = name

	return nil
}

// SetColor changes the presentation colour of the trapezoid at i.
func (v *Variable) SetColor(i int, c membership.Color) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.sets[i].Color = c

	return nil
}

// SetHeight assigns the runtime height of the trapezoid at i, clamped to [0, 1].
func (v *Variable) SetHeight(i int, h float64) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	if !finite(h) {
		return ErrNonFinite
	}
	v.sets[i].Height = clamp(h, 0, 1)

	return nil
}

// ResetHeights sets every height back to 1.
func (v *Variable) ResetHeights() {
	for i := range v.sets {
		v.sets[i].Height = 1
	}
}

// SetPeakLeft moves the left peak of trapezoid i.
//
// Input:  clamped to [prev.PeakRight, PeakRight]; the left shoulder is pinned
// to MinValue().
// Output: clamped to [MinValue(), PeakRight].
func (v *Variable) SetPeakLeft(i int, x float64) error {
	if err := v.checkEdit(i, x); err != nil {
		return err
	}
	t := &v.sets[i]
	if v.mode == Input {
		lo := v.MinValue()
		if i > 0 {
			lo = v.sets[i-1].PeakRight
		}
		t.PeakLeft = clamp(x, lo, t.PeakRight)
	} else {
		t.PeakLeft = clamp(x, v.MinValue(), t.PeakRight)
		t.FootLeft = math.Min(t.FootLeft, t.PeakLeft)
	}
	v.normalize()

	return nil
}

// SetPeakRight moves the right peak of trapezoid i.
//
// Input:  clamped to [PeakLeft, next.PeakLeft]; the right shoulder is pinned
// to MaxValue().
// Output: clamped to [PeakLeft, MaxValue()].
func (v *Variable) SetPeakRight(i int, x float64) error {
	if err := v.checkEdit(i, x); err != nil {
		return err
	}
	t := &v.sets[i]
	if v.mode == Input {
		hi := v.MaxValue()
		if i < len(v.sets)-1 {
			hi = v.sets[i+1].PeakLeft
		}
		t.PeakRight = clamp(x, t.PeakLeft, hi)
	} else {
		t.PeakRight = clamp(x, t.PeakLeft, v.MaxValue())
		t.FootRight = math.Max(t.FootRight, t.PeakRight)
	}
	v.normalize()

	return nil
}

// SetFootLeft moves the left foot of trapezoid i, clamped to
// [MinValue(), PeakLeft]. Input variables derive their feet and return
// ErrFootNotEditable.
func (v *Variable) SetFootLeft(i int, x float64) error {
	if err := v.checkEdit(i, x); err != nil {
		return err
	}
	if v.mode == Input {
		return ErrFootNotEditable
	}
	t := &v.sets[i]
	t.FootLeft = clamp(x, v.MinValue(), t.PeakLeft)

	return nil
}

// SetFootRight moves the right foot of trapezoid i, clamped to
// [PeakRight, MaxValue()]. Input variables return ErrFootNotEditable.
func (v *Variable) SetFootRight(i int, x float64) error {
	if err := v.checkEdit(i, x); err != nil {
		return err
	}
	if v.mode == Input {
		return ErrFootNotEditable
	}
	t := &v.sets[i]
	t.FootRight = clamp(x, t.PeakRight, v.MaxValue())

	return nil
}

// SetShape replaces the corners of trapezoid i in one step. The corners must
// be ordered fl ≤ pl ≤ pr ≤ fr.
//
// Input variables only take the peaks: they are clamped between the
// neighbouring peaks and the feet are re-derived. Output variables clamp all
// four corners into [MinValue(), MaxValue()].
func (v *Variable) SetShape(i int, fl, pl, pr, fr float64) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	for _, x := range [...]float64{fl, pl, pr, fr} {
		if !finite(x) {
			return ErrNonFinite
		}
	}
	if fl > pl || pl > pr || pr > fr {
		return fmt.Errorf("%w: [%g %g %g %g]", ErrBadShape, fl, pl, pr, fr)
	}

	t := &v.sets[i]
	min, max := v.MinValue(), v.MaxValue()
	if v.mode == Input {
		lo, hi := min, max
		if i > 0 {
			lo = v.sets[i-1].PeakRight
		}
		if i < len(v.sets)-1 {
			hi = v.sets[i+1].PeakLeft
		}
		t.PeakLeft = clamp(pl, lo, hi)
		t.PeakRight = clamp(pr, t.PeakLeft, hi)
	} else {
		t.FootLeft = clamp(fl, min, max)
		t.PeakLeft = clamp(pl, min, max)
		t.PeakRight = clamp(pr, min, max)
		t.FootRight = clamp(fr, min, max)
	}
	v.normalize()

	return nil
}

// AddTrapezoid inserts a new trapezoid just before the right shoulder and
// returns a copy of it. Its flat top collapses onto the midpoint between the
// previous trapezoid's PeakRight and the right shoulder's PeakLeft; its feet
// sit on those two peaks. Output sets may overlap, so there the feet take
// the lower and the higher of the two peaks, or span [0, maxValue] when the
// peaks meet.
func (v *Variable) AddTrapezoid() membership.Trapezoid {
	n := len(v.sets)
	prev, next := v.sets[n-2], v.sets[n-1]
	lo, hi := prev.PeakRight, next.PeakLeft
	if v.mode == Output {
		lo, hi = math.Min(lo, hi), math.Max(lo, hi)
		if lo == hi {
			lo, hi = 0, v.maxValue
		}
	}
	mid := lo + (hi-lo)*0.5

	t := v.newTrapezoid(
		fmt.Sprintf("Set %d", n-1),
		palette[(n-2)%len(palette)],
		lo, mid, mid, hi,
	)

	v.sets = append(v.sets, membership.Trapezoid{})
	copy(v.sets[n:], v.sets[n-1:n])
	v.sets[n-1] = t
	v.normalize()

	return v.sets[n-1]
}

// RemoveTrapezoid deletes the interior trapezoid at i. The shoulders cannot
// be removed. On an Input variable the neighbours' feet are re-derived so
// the axis stays continuous.
func (v *Variable) RemoveTrapezoid(i int) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	if i == 0 || i == len(v.sets)-1 {
		return ErrShoulderRemoval
	}
	v.sets = append(v.sets[:i], v.sets[i+1:]...)
	v.normalize()

	return nil
}

// normalize restores every structural invariant of the axis after a
// mutation. It is the only place that branches on the mode.
func (v *Variable) normalize() {
	min, max := v.MinValue(), v.MaxValue()

	if v.mode == Output {
		for i := range v.sets {
			t := &v.sets[i]
			t.FootLeft = clamp(t.FootLeft, min, max)
			t.PeakLeft = clamp(t.PeakLeft, t.FootLeft, max)
			t.PeakRight = clamp(t.PeakRight, t.PeakLeft, max)
			t.FootRight = clamp(t.FootRight, t.PeakRight, max)
		}

		return
	}

	// 1) Peaks form one non-decreasing sequence within the domain.
	floor := min
	for i := range v.sets {
		t := &v.sets[i]
		t.PeakLeft = clamp(t.PeakLeft, floor, max)
		t.PeakRight = clamp(t.PeakRight, t.PeakLeft, max)
		floor = t.PeakRight
	}

	// 2) Shoulders, then feet derived from the neighbours.
	v.relink()
}

// relink pins the shoulders to the domain bounds and puts every foot on the
// neighbouring peak.
func (v *Variable) relink() {
	n := len(v.sets)
	min, max := v.MinValue(), v.MaxValue()

	v.sets[0].PeakLeft = min
	v.sets[n-1].PeakRight = max
	for i := range v.sets {
		t := &v.sets[i]
		if i == 0 {
			t.FootLeft = min
		} else {
			t.FootLeft = v.sets[i-1].PeakRight
		}
		if i == n-1 {
			t.FootRight = max
		} else {
			t.FootRight = v.sets[i+1].PeakLeft
		}
	}
}

func (v *Variable) checkIndex(i int) error {
	if i < 0 || i >= len(v.sets) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return nil
}

func (v *Variable) checkEdit(i int, x float64) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	if !finite(x) {
		return ErrNonFinite
	}

	return nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// clamp returns x limited to [lo, hi]. When lo > hi, lo wins.
func clamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}

	return x
}
