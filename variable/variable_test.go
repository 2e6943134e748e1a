// SPDX-License-Identifier: MIT

package variable_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/membership"
	"github.com/katalvlaran/lvfuzzy/variable"
)

const eps = 1e-9

// seqIDs returns a deterministic id generator: prefix-0, prefix-1, ...
func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		id := fmt.Sprintf("%s-%d", prefix, n)
		n++
		return id
	}
}

// requireContinuous asserts the input-axis invariants: shoulders pinned to the
// domain bounds and every interior foot on the neighbouring peak.
func requireContinuous(t *testing.T, v *variable.Variable) {
	t.Helper()
	ts := v.Trapezoids()
	n := len(ts)
	require.GreaterOrEqual(t, n, 2)

	assert.Equal(t, v.MinValue(), ts[0].FootLeft)
	assert.Equal(t, v.MinValue(), ts[0].PeakLeft)
	assert.Equal(t, v.MaxValue(), ts[n-1].PeakRight)
	assert.Equal(t, v.MaxValue(), ts[n-1].FootRight)
	for i := 0; i < n-1; i++ {
		assert.Equal(t, ts[i].PeakRight, ts[i+1].FootLeft, "foot left of %d", i+1)
		assert.Equal(t, ts[i+1].PeakLeft, ts[i].FootRight, "foot right of %d", i)
	}
	for i, tr := range ts {
		assert.LessOrEqual(t, tr.FootLeft, tr.PeakLeft, "trapezoid %d", i)
		assert.LessOrEqual(t, tr.PeakLeft, tr.PeakRight, "trapezoid %d", i)
		assert.LessOrEqual(t, tr.PeakRight, tr.FootRight, "trapezoid %d", i)
	}
}

// TestNewInput_Defaults checks the default domain and shoulder layout.
func TestNewInput_Defaults(t *testing.T) {
	v := variable.NewInput(variable.WithName("distance"))
	assert.Equal(t, "distance", v.Name())
	assert.Equal(t, variable.Input, v.Mode())
	assert.NotEmpty(t, v.ID())
	assert.Equal(t, 0.0, v.MinValue())
	assert.Equal(t, 100.0, v.MaxValue())
	assert.Equal(t, 2, v.Len())
	assert.Equal(t, variable.DefaultDivision, v.Division())
	assert.Equal(t, variable.DefaultSubdivision, v.Subdivision())

	left, err := v.Trapezoid(0)
	require.NoError(t, err)
	assert.Equal(t, 20.0, left.PeakRight)
	assert.Equal(t, 80.0, left.FootRight)
	assert.Equal(t, 1.0, left.Height)

	right, err := v.Trapezoid(1)
	require.NoError(t, err)
	assert.Equal(t, 80.0, right.PeakLeft)
	assert.Equal(t, 20.0, right.FootLeft)
	requireContinuous(t, v)
}

// TestNewOutput_Defaults checks the 50% extension and the shoulder triangles.
func TestNewOutput_Defaults(t *testing.T) {
	v := variable.NewOutput(variable.WithMaxValue(10))
	assert.Equal(t, variable.Output, v.Mode())
	assert.Equal(t, -5.0, v.MinValue())
	assert.Equal(t, 15.0, v.MaxValue())

	left, _ := v.Trapezoid(0)
	assert.Equal(t, membership.Trapezoid{
		ID: left.ID, Name: left.Name, Color: left.Color,
		FootLeft: -2.5, PeakLeft: 0, PeakRight: 0, FootRight: 2.5, Height: 1,
	}, left)

	right, _ := v.Trapezoid(1)
	assert.Equal(t, 7.5, right.FootLeft)
	assert.Equal(t, 10.0, right.PeakLeft)
	assert.Equal(t, 10.0, right.PeakRight)
	assert.Equal(t, 12.5, right.FootRight)
}

// TestAddTrapezoid_Input inserts before the right shoulder and keeps the axis
// continuous.
func TestAddTrapezoid_Input(t *testing.T) {
	v := variable.NewInput()
	added := v.AddTrapezoid()

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 1, v.IndexOf(added.ID))
	assert.Equal(t, 50.0, added.PeakLeft)
	assert.Equal(t, 50.0, added.PeakRight)
	assert.Equal(t, 20.0, added.FootLeft)
	assert.Equal(t, 80.0, added.FootRight)
	requireContinuous(t, v)

	// the second insertion lands between the first one and the right shoulder
	second := v.AddTrapezoid()
	assert.Equal(t, 2, v.IndexOf(second.ID))
	assert.Equal(t, 65.0, second.PeakLeft)
	requireContinuous(t, v)
}

// TestAddTrapezoid_Output sits the new feet on the neighbours' peaks.
func TestAddTrapezoid_Output(t *testing.T) {
	v := variable.NewOutput()
	added := v.AddTrapezoid()
	assert.Equal(t, 0.0, added.FootLeft)
	assert.Equal(t, 50.0, added.PeakLeft)
	assert.Equal(t, 50.0, added.PeakRight)
	assert.Equal(t, 100.0, added.FootRight)

	// output shoulders are not relinked
	left, _ := v.Trapezoid(0)
	assert.Equal(t, 25.0, left.FootRight)
}

// TestAddTrapezoid_OutputOverlap keeps a usable width when the neighbours'
// peaks cross or meet.
func TestAddTrapezoid_OutputOverlap(t *testing.T) {
	v := variable.NewOutput()
	require.NoError(t, v.SetShape(0, -50, 0, 60, 80))
	require.NoError(t, v.SetShape(1, 10, 30, 100, 150))

	added := v.AddTrapezoid()
	assert.Equal(t, 30.0, added.FootLeft)
	assert.Equal(t, 45.0, added.PeakLeft)
	assert.Equal(t, 45.0, added.PeakRight)
	assert.Equal(t, 60.0, added.FootRight)

	met := variable.NewOutput()
	require.NoError(t, met.SetShape(0, -50, 0, 50, 80))
	require.NoError(t, met.SetShape(1, 20, 50, 100, 150))
	added = met.AddTrapezoid()
	assert.Equal(t, 0.0, added.FootLeft)
	assert.Equal(t, 50.0, added.PeakLeft)
	assert.Equal(t, 100.0, added.FootRight)
}

// TestRemoveTrapezoid covers the shoulder guard and neighbour re-linking.
func TestRemoveTrapezoid(t *testing.T) {
	v := variable.NewInput()
	v.AddTrapezoid()
	v.AddTrapezoid()
	require.Equal(t, 4, v.Len())

	assert.ErrorIs(t, v.RemoveTrapezoid(0), variable.ErrShoulderRemoval)
	assert.ErrorIs(t, v.RemoveTrapezoid(3), variable.ErrShoulderRemoval)
	assert.ErrorIs(t, v.RemoveTrapezoid(7), variable.ErrIndexOutOfRange)

	require.NoError(t, v.RemoveTrapezoid(1))
	assert.Equal(t, 3, v.Len())
	requireContinuous(t, v)

	// neighbours of the removed one now share an edge
	left, _ := v.Trapezoid(0)
	mid, _ := v.Trapezoid(1)
	assert.Equal(t, mid.PeakLeft, left.FootRight)
}

// TestSetPeak_InputClamping keeps peaks between the neighbouring peaks.
func TestSetPeak_InputClamping(t *testing.T) {
	v := variable.NewInput()
	v.AddTrapezoid() // index 1, peaks 50/50

	require.NoError(t, v.SetPeakRight(1, 70))
	require.NoError(t, v.SetPeakLeft(1, 30))
	mid, _ := v.Trapezoid(1)
	assert.Equal(t, 30.0, mid.PeakLeft)
	assert.Equal(t, 70.0, mid.PeakRight)
	requireContinuous(t, v)

	// cannot pass the left shoulder's peak (20) nor the right's (80)
	require.NoError(t, v.SetPeakLeft(1, -5))
	require.NoError(t, v.SetPeakRight(1, 500))
	mid, _ = v.Trapezoid(1)
	assert.Equal(t, 20.0, mid.PeakLeft)
	assert.Equal(t, 80.0, mid.PeakRight)
	requireContinuous(t, v)

	// shoulders stay pinned
	require.NoError(t, v.SetPeakLeft(0, 10))
	left, _ := v.Trapezoid(0)
	assert.Equal(t, v.MinValue(), left.PeakLeft)

	// the left shoulder's right peak is bounded by the neighbour
	require.NoError(t, v.SetPeakRight(0, 90))
	left, _ = v.Trapezoid(0)
	assert.Equal(t, 20.0, left.PeakRight)

	assert.ErrorIs(t, v.SetFootLeft(1, 3), variable.ErrFootNotEditable)
	assert.ErrorIs(t, v.SetPeakLeft(1, math.NaN()), variable.ErrNonFinite)
	assert.ErrorIs(t, v.SetPeakLeft(9, 1), variable.ErrIndexOutOfRange)
}

// TestSetEdges_OutputClamping keeps every corner inside its own trapezoid and
// the extended domain.
func TestSetEdges_OutputClamping(t *testing.T) {
	v := variable.NewOutput()
	i := v.IndexOf(v.AddTrapezoid().ID)

	require.NoError(t, v.SetFootLeft(i, -1000))
	require.NoError(t, v.SetFootRight(i, 1000))
	tr, _ := v.Trapezoid(i)
	assert.Equal(t, v.MinValue(), tr.FootLeft)
	assert.Equal(t, v.MaxValue(), tr.FootRight)

	require.NoError(t, v.SetFootLeft(i, 60))
	tr, _ = v.Trapezoid(i)
	assert.Equal(t, tr.PeakLeft, tr.FootLeft)

	require.NoError(t, v.SetPeakRight(i, 10))
	tr, _ = v.Trapezoid(i)
	assert.Equal(t, tr.PeakLeft, tr.PeakRight)

	// output shapes may overlap their neighbours
	require.NoError(t, v.SetShape(i, -10, 5, 95, 120))
	tr, _ = v.Trapezoid(i)
	assert.Equal(t, [4]float64{-10, 5, 95, 120}, [4]float64{tr.FootLeft, tr.PeakLeft, tr.PeakRight, tr.FootRight})

	assert.ErrorIs(t, v.SetShape(i, 10, 5, 95, 120), variable.ErrBadShape)
}

// TestSetShape_Input takes only the peaks and re-derives the feet.
func TestSetShape_Input(t *testing.T) {
	v := variable.NewInput()
	v.AddTrapezoid()
	require.NoError(t, v.SetShape(1, 0, 35, 45, 100))
	tr, _ := v.Trapezoid(1)
	assert.Equal(t, 20.0, tr.FootLeft)
	assert.Equal(t, 35.0, tr.PeakLeft)
	assert.Equal(t, 45.0, tr.PeakRight)
	assert.Equal(t, 80.0, tr.FootRight)
	requireContinuous(t, v)
}

// TestSetValue clamps inputs and leaves outputs alone.
func TestSetValue(t *testing.T) {
	in := variable.NewInput()
	require.NoError(t, in.SetValue(150))
	assert.Equal(t, 100.0, in.Value())
	require.NoError(t, in.SetValue(-3))
	assert.Equal(t, 0.0, in.Value())
	assert.ErrorIs(t, in.SetValue(math.Inf(1)), variable.ErrNonFinite)

	out := variable.NewOutput()
	require.NoError(t, out.SetValue(140))
	assert.Equal(t, 140.0, out.Value())
}

// TestSetMaxValue shrinks the domain and keeps the axis consistent.
func TestSetMaxValue(t *testing.T) {
	v := variable.NewInput()
	v.AddTrapezoid()
	require.NoError(t, v.SetValue(90))

	require.NoError(t, v.SetMaxValue(40))
	assert.Equal(t, 40.0, v.MaxValue())
	assert.Equal(t, 40.0, v.Value())
	requireContinuous(t, v)

	assert.ErrorIs(t, v.SetMaxValue(0), variable.ErrBadMaxValue)
	assert.ErrorIs(t, v.SetSubdivision(0), variable.ErrBadSubdivision)
	assert.Error(t, v.SetDivision(0))
}

// TestLookups covers id and name lookups and metadata setters.
func TestLookups(t *testing.T) {
	v := variable.NewInput(variable.WithIDGenerator(seqIDs("t")), variable.WithID("dist"))
	assert.Equal(t, "dist", v.ID())

	left, err := v.TrapezoidByID("t-0")
	require.NoError(t, err)
	assert.Equal(t, "Left", left.Name)

	require.NoError(t, v.SetTrapezoidName(1, "far"))
	far, err := v.TrapezoidByName("far")
	require.NoError(t, err)
	assert.Equal(t, "t-1", far.ID)

	_, err = v.TrapezoidByName("nowhere")
	assert.ErrorIs(t, err, variable.ErrTrapezoidNotFound)
	_, err = v.TrapezoidByID("t-9")
	assert.ErrorIs(t, err, variable.ErrTrapezoidNotFound)
	assert.Equal(t, -1, v.IndexOf("t-9"))

	red := membership.Color{R: 1, A: 1}
	require.NoError(t, v.SetColor(1, red))
	far, _ = v.Trapezoid(1)
	assert.Equal(t, red, far.Color)

	require.NoError(t, v.SetHeight(1, 2))
	far, _ = v.Trapezoid(1)
	assert.Equal(t, 1.0, far.Height)
	require.NoError(t, v.SetHeight(1, 0.25))
	v.ResetHeights()
	far, _ = v.Trapezoid(1)
	assert.Equal(t, 1.0, far.Height)
}

// TestTrapezoids_ReturnsCopy makes sure callers cannot bypass clamping.
func TestTrapezoids_ReturnsCopy(t *testing.T) {
	v := variable.NewInput()
	ts := v.Trapezoids()
	ts[0].PeakRight = 99

	left, _ := v.Trapezoid(0)
	assert.Equal(t, 20.0, left.PeakRight)
}

// TestMode_Text covers the text round trip used by the codecs.
func TestMode_Text(t *testing.T) {
	b, err := variable.Output.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "output", string(b))

	var m variable.Mode
	require.NoError(t, m.UnmarshalText([]byte("output")))
	assert.Equal(t, variable.Output, m)
	assert.Error(t, m.UnmarshalText([]byte("sideways")))
	assert.Equal(t, "Mode(7)", variable.Mode(7).String())
}
