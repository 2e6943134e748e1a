// SPDX-License-Identifier: MIT

package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// followSystem builds the distance → speed system:
//
//	distance [0,100]: near peaks [0,20], medium peaks [30,50], far peaks [80,100]
//	speed    [0,10]:  near peak 0, medium peak 5, far peak 10
//	speed.X = IDENTITY(distance.X) for X in near, medium, far
func followSystem(t testing.TB, opts ...fuzzy.Option) *fuzzy.System {
	t.Helper()
	base := []fuzzy.Option{
		fuzzy.WithName("follow"),
		fuzzy.WithInputOptions(variable.WithName("distance")),
		fuzzy.WithOutputOptions(variable.WithName("speed"), variable.WithMaxValue(10)),
	}
	sys, err := fuzzy.New(append(base, opts...)...)
	require.NoError(t, err)

	dist, err := sys.Input(0)
	require.NoError(t, err)
	dist.AddTrapezoid()
	require.NoError(t, dist.SetShape(1, 20, 30, 50, 80))

	speed := sys.OutputVariable()
	speed.AddTrapezoid()
	require.NoError(t, speed.SetShape(1, 2.5, 5, 5, 7.5))

	for i, name := range []string{"near", "medium", "far"} {
		require.NoError(t, dist.SetTrapezoidName(i, name))
		require.NoError(t, speed.SetTrapezoidName(i, name))
	}

	for _, name := range []string{"near", "medium", "far"} {
		in, err := sys.TrapezoidByName("distance", name)
		require.NoError(t, err)
		out, err := sys.TrapezoidByName("speed", name)
		require.NoError(t, err)

		n, err := sys.AddNode(name, inference.Identity)
		require.NoError(t, err)
		require.NoError(t, sys.Connect(n.ID, inference.Left, in.ID))
		require.NoError(t, sys.SetTarget(n.ID, out.ID))
	}

	return sys
}

// outputAt sets the distance and returns the normalized speed.
func outputAt(t testing.TB, sys *fuzzy.System, distance float64) float64 {
	t.Helper()
	require.NoError(t, sys.SetValue("distance", distance))
	out, err := sys.Output()
	require.NoError(t, err)

	return out
}

// recorder is an Observer keeping every report.
type recorder struct{ reports []fuzzy.Report }

func (r *recorder) Evaluated(rep fuzzy.Report) { r.reports = append(r.reports, rep) }

// targetID returns the id of the named speed trapezoid.
func targetID(t testing.TB, sys *fuzzy.System, name string) string {
	t.Helper()
	tr, err := sys.TrapezoidByName("speed", name)
	require.NoError(t, err)

	return tr.ID
}
