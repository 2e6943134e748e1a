// SPDX-License-Identifier: MIT

package fuzzy_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// ExampleSystem_Output drives a speed from the distance to a target:
// near stops, medium cruises at half speed, far runs at full speed.
func ExampleSystem_Output() {
	sys, err := fuzzy.New(
		fuzzy.WithName("follow"),
		fuzzy.WithInputOptions(variable.WithName("distance")),
		fuzzy.WithOutputOptions(variable.WithName("speed"), variable.WithMaxValue(10)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	dist, _ := sys.Input(0)
	dist.AddTrapezoid()
	_ = dist.SetShape(1, 20, 30, 50, 80)

	speed := sys.OutputVariable()
	speed.AddTrapezoid()
	_ = speed.SetShape(1, 2.5, 5, 5, 7.5)

	for i, name := range []string{"near", "medium", "far"} {
		_ = dist.SetTrapezoidName(i, name)
		_ = speed.SetTrapezoidName(i, name)

		in, _ := dist.TrapezoidByName(name)
		out, _ := speed.TrapezoidByName(name)
		n, _ := sys.AddNode(name, inference.Identity)
		_ = sys.Connect(n.ID, inference.Left, in.ID)
		_ = sys.SetTarget(n.ID, out.ID)
	}

	_ = sys.SetValue("distance", 15)
	out, _ := sys.Output()
	fmt.Println("stopped:", math.Abs(out) < 1e-9)

	for _, d := range []float64{40, 90} {
		_ = sys.SetValue("distance", d)
		out, _ = sys.Output()
		fmt.Printf("distance %.0f -> speed %.2f\n", d, out*speed.MaxNominal())
	}

	// Output:
	// stopped: true
	// distance 40 -> speed 5.00
	// distance 90 -> speed 10.00
}

// ExampleSystem_Connect shows the edit-time loop check.
func ExampleSystem_Connect() {
	sys, _ := fuzzy.New()
	a, _ := sys.AddNode("a", inference.Identity)
	b, _ := sys.AddNode("b", inference.Identity)

	fmt.Println(sys.Connect(a.ID, inference.Left, b.ID))
	fmt.Println(sys.Connect(b.ID, inference.Left, a.ID))

	// Output:
	// <nil>
	// fuzzy: cycle reference: node "b"
}
