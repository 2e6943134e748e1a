// SPDX-License-Identifier: MIT

// Package variable implements a fuzzy axis: an ordered list of trapezoids
// sharing one crisp input domain, with fuzzification (crisp → memberships)
// and centroid defuzzification (aggregated shape → crisp).
//
// What:
//
//   - Variable carries a Mode instead of a type hierarchy:
//     Input:  fuzzification axis. Feet are derived: every interior foot sits
//     on the neighbour's peak, shoulders run to the extended domain bounds.
//     Output: defuzzification axis. Feet are edited independently, shapes may
//     overlap or leave gaps, the domain extends by 50% on both sides.
//   - Trapezoids live in one contiguous slice; index 0 and the last index are
//     the permanent shoulders. All edge clamping is centralized here and is
//     re-derived for the whole list after every mutation, so a trapezoid never
//     reaches into its neighbour.
//   - Fuzzify(x): every contributing (membership, trapezoid) pair at x.
//   - Defuzzify(): samples the max-aggregated outline and returns its
//     shoelace barycenter.
//
// Domain bounds:
//
//	MinValue() = -maxValue * minExtension
//	MaxValue() =  maxValue * (1 + maxExtension)
//
// Defuzzification sampling:
//
//	      ----*----        ----*----*
//	   *--         ---*----          \
//	   |                              \
//	   |             * centroid        \
//	   *_______*_______*________*_______*
//
// Uniform samples (Subdivision of them) are merged with every corner of every
// trapezoid, so corners are never smoothed away. At each sample only the
// highest membership is kept (fuzzy union).
//
// Concurrency:
//
//   - A Variable is not safe for concurrent use. Mutation and evaluation must
//     be serialized by the host (one simulation or UI loop).
//
// Errors:
//
//   - ErrIndexOutOfRange    trapezoid index outside [0, Len()).
//   - ErrShoulderRemoval    removing index 0 or Len()-1.
//   - ErrFootNotEditable    setting a foot on an Input variable.
//   - ErrBadShape           corners out of order in SetShape or a restored state.
//   - ErrNonFinite          NaN or ±Inf value.
//   - ErrBadMaxValue        maxValue ≤ 0.
//   - ErrBadSubdivision     subdivision < 1.
//   - ErrTooFewTrapezoids   a restored state with fewer than two trapezoids.
//   - ErrTrapezoidNotFound  unknown trapezoid id or name.
//   - ErrDuplicateID        two trapezoids sharing one id in a restored state.
package variable
