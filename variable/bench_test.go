// SPDX-License-Identifier: MIT

package variable_test

import (
	"testing"

	"github.com/katalvlaran/lvfuzzy/variable"
)

func benchOutput(b *testing.B, sets, subdivision int) *variable.Variable {
	b.Helper()
	v := variable.NewOutput(variable.WithSubdivision(subdivision))
	for i := 0; i < sets; i++ {
		v.AddTrapezoid()
	}
	for i := 0; i < v.Len(); i++ {
		if err := v.SetHeight(i, float64(i%4+1)/4); err != nil {
			b.Fatal(err)
		}
	}

	return v
}

func BenchmarkDefuzzify_Default(b *testing.B) {
	v := benchOutput(b, 3, variable.DefaultSubdivision)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Defuzzify()
	}
}

func BenchmarkDefuzzify_Fine(b *testing.B) {
	v := benchOutput(b, 8, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Defuzzify()
	}
}

func BenchmarkFuzzify(b *testing.B) {
	v := variable.NewInput()
	for i := 0; i < 6; i++ {
		v.AddTrapezoid()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Fuzzify(float64(i % 100))
	}
}
