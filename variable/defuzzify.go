// SPDX-License-Identifier: MIT

package variable

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvfuzzy/membership"
)

// Defuzzify computes the centroid of the union of all height-scaled
// trapezoids.
//
// Steps:
//  1. Domain: the widest foot extent widened by 1 on each side.
//  2. Samples: Subdivision() evenly spaced x values starting at the domain
//     minimum, merged with every foot and every height-adjusted peak.
//     Sorted ascending and de-duplicated.
//  3. Outline: at each sample keep the highest membership over all
//     trapezoids; samples no trapezoid covers are skipped.
//  4. Close the polygon with (domainMin, 0) in front and (domainMax, 0) at
//     the end, then take its shoelace centroid. When a single trapezoid has
//     any area the union is that trapezoid, and its own centroid is used.
//
// When the outline has no area (every height is 0), Degenerate is set and
// the centroid falls back to the midpoint of [MinValue(), MaxValue()].
//
// Complexity: O((S + 4T) * T), S = Subdivision(), T = Len().
func (v *Variable) Defuzzify() Defuzzification {
	// 1) domain
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range v.sets {
		lo = math.Min(lo, v.sets[i].FootLeft)
		hi = math.Max(hi, v.sets[i].FootRight)
	}
	domainMin, domainMax := lo-1, hi+1

	// 2) samples
	xs := make([]float64, 0, v.subdivision+4*len(v.sets))
	step := (domainMax - domainMin) / float64(v.subdivision)
	for i := 0; i < v.subdivision; i++ {
		xs = append(xs, domainMin+float64(i)*step)
	}
	for i := range v.sets {
		left, right := v.sets[i].AdjustedPeaks()
		xs = append(xs, v.sets[i].FootLeft, left.X, right.X, v.sets[i].FootRight)
	}
	sort.Float64s(xs)
	xs = dedupe(xs)

	// 3) max-aggregated outline
	outline := make([]membership.Point, 0, len(xs)+2)
	outline = append(outline, membership.Point{X: domainMin})
	for _, x := range xs {
		if y, ok := v.aggregate(x); ok {
			outline = append(outline, membership.Point{X: x, Y: y})
		}
	}
	outline = append(outline, membership.Point{X: domainMax})

	baseline := make([]membership.Point, len(outline))
	for i, p := range outline {
		baseline[i] = membership.Point{X: p.X}
	}

	// 4) centroid
	res := Defuzzification{Outline: outline, Baseline: baseline}
	if t, ok := v.soleActive(); ok {
		if c, ok := t.Centroid(); ok {
			res.Centroid = c
			return res
		}
	}
	c, _, ok := membership.PolygonCentroid(outline)
	if !ok {
		res.Centroid = membership.Point{X: (v.MinValue() + v.MaxValue()) / 2}
		res.Degenerate = true

		return res
	}
	res.Centroid = c

	return res
}

// soleActive returns the trapezoid with a non-zero area when exactly one has.
func (v *Variable) soleActive() (membership.Trapezoid, bool) {
	var sole membership.Trapezoid
	n := 0
	for i := range v.sets {
		if v.sets[i].Area() > membership.AreaEpsilon {
			sole = v.sets[i]
			n++
		}
	}

	return sole, n == 1
}

// aggregate is the fuzzy union at x: the highest membership of any trapezoid.
func (v *Variable) aggregate(x float64) (float64, bool) {
	best, found := 0.0, false
	for i := range v.sets {
		m, ok := v.sets[i].Membership(x)
		if ok && (!found || m > best) {
			best, found = m, true
		}
	}

	return best, found
}

// dedupe drops consecutive equal values from a sorted slice in place.
func dedupe(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}
