// SPDX-License-Identifier: MIT

package variable

// Fuzzify returns every trapezoid contributing at x with its membership
// degree, in axis order. Trapezoids that do not cover x are omitted.
// The stored value is not touched.
//
// Complexity: O(Len()).
func (v *Variable) Fuzzify(x float64) []Activation {
	out := make([]Activation, 0, 2)
	for i := range v.sets {
		if m, ok := v.sets[i].Membership(x); ok {
			out = append(out, Activation{Index: i, ID: v.sets[i].ID, Value: m})
		}
	}

	return out
}

// FuzzifyValue fuzzifies the stored crisp value.
func (v *Variable) FuzzifyValue() []Activation { return v.Fuzzify(v.value) }

// Membership returns the degree of the trapezoid with the given id at the
// stored crisp value; a trapezoid that does not cover the value yields 0.
// Unknown ids report ok=false.
func (v *Variable) Membership(trapezoidID string) (float64, bool) {
	i := v.IndexOf(trapezoidID)
	if i < 0 {
		return 0, false
	}
	m, _ := v.sets[i].Membership(v.value)

	return m, true
}
