// SPDX-License-Identifier: MIT

package membership

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonFinite indicates a corner or the height is NaN or ±Inf.
	ErrNonFinite = errors.New("membership: NaN or Inf in trapezoid")

	// ErrFlipped indicates corners violating FootLeft ≤ PeakLeft ≤ PeakRight ≤ FootRight.
	ErrFlipped = errors.New("membership: trapezoid corners out of order")

	// ErrBadHeight indicates a height outside [0, 1].
	ErrBadHeight = errors.New("membership: height must be within [0, 1]")
)

// Point is a position on a fuzzy axis: X is the crisp value, Y the degree.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Color is presentation metadata; evaluation never reads it.
type Color struct {
	R float64 `json:"r" yaml:"r"`
	G float64 `json:"g" yaml:"g"`
	B float64 `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// Trapezoid is one fuzzy set on an axis.
//
//	     PeakLeft   PeakRight
//	        *---------*          (Height)
//	       /           \
//	      /             \
//	     *---------------*       (0)
//	  FootLeft        FootRight
//
// Height is a runtime field assigned by the inference graph on every
// evaluation cycle; it is not part of the edited shape.
type Trapezoid struct {
	ID    string
	Name  string
	Color Color

	FootLeft  float64
	PeakLeft  float64
	PeakRight float64
	FootRight float64

	Height float64
}

// HeightAdjustedPeak moves the peak corner (peakX, 1) towards the foot
// corner (footX, 0) in proportion to height:
//
//	v = (peakX - footX, 1) * height
//	result = (footX + v.x, v.y)
//
// A vertical leg (peakX == footX) yields v.x == 0, so the result is stable.
func HeightAdjustedPeak(peakX, footX, height float64) Point {
	vx := (peakX - footX) * height
	vy := 1 * height

	return Point{X: footX + vx, Y: vy}
}

// Intersect returns where the vertical probe line at crispX crosses the leg
// running from (footX, 0) to (peakX, height).
//
//	     *--* (peakX, height)
//	    /    \
//	   /      * (result)
//	  /       |\
//	 *--------*-* (footX, 0)
//	       crispX
//
// Precondition: peakX != footX. Callers route vertical legs through the
// flat-top branch of Membership instead.
func Intersect(peakX, footX, crispX, height float64) Point {
	t := (crispX - footX) / (peakX - footX)

	return Point{X: footX + t*(peakX-footX), Y: t * height}
}

// AdjustedPeaks returns both peak corners after scaling by t.Height.
func (t Trapezoid) AdjustedPeaks() (left, right Point) {
	left = HeightAdjustedPeak(t.PeakLeft, t.FootLeft, t.Height)
	right = HeightAdjustedPeak(t.PeakRight, t.FootRight, t.Height)

	return left, right
}

// Membership reports the degree of membership of x and whether the
// trapezoid contributes at x at all.
//
// Branches, in order:
//  1. left leg   FootLeft ≤ x < adjustedPeakLeft   → interpolate on the leg
//  2. right leg  adjustedPeakRight < x ≤ FootRight → interpolate on the leg
//  3. flat top   adjustedPeakLeft ≤ x ≤ adjustedPeakRight → exactly Height
//  4. otherwise no contribution
func (t Trapezoid) Membership(x float64) (float64, bool) {
	left, right := t.AdjustedPeaks()

	switch {
	case x >= t.FootLeft && x < left.X:
		return Intersect(left.X, t.FootLeft, x, t.Height).Y, true
	case x > right.X && x <= t.FootRight:
		return Intersect(right.X, t.FootRight, x, t.Height).Y, true
	case x >= left.X && x <= right.X:
		return t.Height, true
	default:
		return 0, false
	}
}

// Outline returns the four corners of the height-scaled shape, left to right.
func (t Trapezoid) Outline() []Point {
	left, right := t.AdjustedPeaks()

	return []Point{{X: t.FootLeft}, left, right, {X: t.FootRight}}
}

// Area is the closed-form area of the height-scaled shape.
func (t Trapezoid) Area() float64 {
	left, right := t.AdjustedPeaks()
	bottom := t.FootRight - t.FootLeft
	top := right.X - left.X

	return (bottom + top) * t.Height / 2
}

// Centroid is the barycenter of the height-scaled shape: the shoelace
// centroid of its Outline. The second return is false when the shape has no
// area.
func (t Trapezoid) Centroid() (Point, bool) {
	c, _, ok := PolygonCentroid(t.Outline())

	return c, ok
}

// Validate checks that every field is finite, the corners are ordered and
// the height lies within [0, 1].
func (t Trapezoid) Validate() error {
	for _, v := range [...]float64{t.FootLeft, t.PeakLeft, t.PeakRight, t.FootRight, t.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	if t.FootLeft > t.PeakLeft || t.PeakLeft > t.PeakRight || t.PeakRight > t.FootRight {
		return fmt.Errorf("%w: [%g %g %g %g]", ErrFlipped, t.FootLeft, t.PeakLeft, t.PeakRight, t.FootRight)
	}
	if t.Height < 0 || t.Height > 1 {
		return ErrBadHeight
	}

	return nil
}
