// SPDX-License-Identifier: MIT

// Package membership implements the trapezoidal membership function used on
// every fuzzy axis of lvfuzzy.
//
// What:
//
//   - Trapezoid: a value type holding the four x-axis corners of a fuzzy set
//     (FootLeft ≤ PeakLeft ≤ PeakRight ≤ FootRight) plus a runtime Height.
//   - HeightAdjustedPeak: shrinks a peak corner towards its foot in
//     proportion to Height, keeping the foot fixed.
//   - Intersect: crossing point of a vertical probe line with a sloped leg.
//   - Membership: degree of membership of a crisp value (four-branch rule:
//     left leg, right leg, flat top, outside).
//
// Shapes never flip. When a foot equals its peak the leg is vertical and the
// trapezoid degenerates to a rectangle on that side:
//
//	     *----*            *----*
//	    /      \           |    |
//	   /        \          |    |
//	  *----------*         *----*
//
// Trapezoid carries no knowledge of its neighbours. Shared-edge and shoulder
// invariants belong to the owning variable (package variable).
//
// Complexity:
//
//   - Every function in this package is O(1).
//
// Errors:
//
//   - ErrNonFinite  a corner or the height is NaN or ±Inf.
//   - ErrFlipped    the corners are not ordered foot ≤ peak ≤ peak ≤ foot.
//   - ErrBadHeight  the height lies outside [0, 1].
package membership
