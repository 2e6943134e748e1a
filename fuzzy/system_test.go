// SPDX-License-Identifier: MIT

package fuzzy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuzzy/fuzzy"
	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/variable"
)

// TestScenario_FollowTarget drives the distance/speed system across the axis.
func TestScenario_FollowTarget(t *testing.T) {
	sys := followSystem(t)

	// 15 sits on near's flat top: full near, nothing else
	out := outputAt(t, sys, 15)
	assert.Less(t, out, 0.1)
	assert.InDelta(t, 0, out, 1e-6)

	near, _ := sys.TrapezoidByName("distance", "near")
	dist, _ := sys.VariableByName("distance")
	m, ok := dist.Membership(near.ID)
	require.True(t, ok)
	assert.GreaterOrEqual(t, m, 0.0)
	assert.LessOrEqual(t, m, 1.0)

	for _, name := range []string{"medium", "far"} {
		h, err := sys.Activation(targetID(t, sys, name))
		require.NoError(t, err)
		assert.Zero(t, h, name)
	}

	// 25 lies on the slope between near and medium
	require.NoError(t, sys.SetValue("distance", 25))
	acts := dist.FuzzifyValue()
	require.Len(t, acts, 2)
	assert.InDelta(t, 0.5, acts[0].Value, 1e-9)
	assert.InDelta(t, 0.5, acts[1].Value, 1e-9)
	mid := outputAt(t, sys, 25)
	assert.Greater(t, mid, out)
	assert.Less(t, mid, 0.5)

	assert.InDelta(t, 0.5, outputAt(t, sys, 40), 1e-6)
	assert.InDelta(t, 1.0, outputAt(t, sys, 90), 1e-6)
}

// TestEvaluate_ModeOff resets every height to 1, Output still forces a pass.
func TestEvaluate_ModeOff(t *testing.T) {
	sys := followSystem(t)
	require.NoError(t, sys.SetValue("distance", 15))
	require.NoError(t, sys.Evaluate())

	h, _ := sys.Activation(targetID(t, sys, "far"))
	assert.Zero(t, h)

	sys.SetEvaluate(false)
	assert.False(t, sys.Evaluating())
	require.NoError(t, sys.Evaluate())
	for _, name := range []string{"near", "medium", "far"} {
		h, _ = sys.Activation(targetID(t, sys, name))
		assert.Equal(t, 1.0, h, name)
	}

	// union of all three symmetric-ish shapes sits near the middle
	res, err := sys.Defuzzify()
	require.NoError(t, err)
	assert.InDelta(t, 5, res.Centroid.X, 1e-6)

	out, err := sys.Output()
	require.NoError(t, err)
	assert.InDelta(t, 0, out, 1e-6)
	assert.False(t, sys.Evaluating())
}

// TestEvaluate_LastWriterWins lets the later node overwrite a shared target and
// Validate reports it.
func TestEvaluate_LastWriterWins(t *testing.T) {
	sys := followSystem(t)
	far, _ := sys.TrapezoidByName("distance", "far")
	nearOut := targetID(t, sys, "near")

	extra, err := sys.AddNode("override", inference.Not)
	require.NoError(t, err)
	require.NoError(t, sys.Connect(extra.ID, inference.Left, far.ID))
	require.NoError(t, sys.SetTarget(extra.ID, nearOut))

	require.NoError(t, sys.SetValue("distance", 90))
	require.NoError(t, sys.Evaluate())
	h, _ := sys.Activation(nearOut)
	assert.Zero(t, h) // NOT(far=1) from the later node

	err = sys.Validate()
	assert.ErrorIs(t, err, fuzzy.ErrDuplicateOutputTarget)
	assert.NotErrorIs(t, err, fuzzy.ErrCycleReference)
}

// TestValidate_Clean reports nothing for the scenario system.
func TestValidate_Clean(t *testing.T) {
	sys := followSystem(t)
	assert.NoError(t, sys.Validate())
	assert.Empty(t, sys.Cycles())
}

// TestVariables covers input management and lookups.
func TestVariables(t *testing.T) {
	sys := followSystem(t)
	assert.Equal(t, 1, sys.NumInputs())

	first, _ := sys.Input(0)
	assert.ErrorIs(t, sys.RemoveInput(first.ID()), fuzzy.ErrLastInput)

	angle, err := sys.AddInput(variable.WithName("angle"), variable.WithMaxValue(180))
	require.NoError(t, err)
	assert.Equal(t, 2, sys.NumInputs())
	assert.Equal(t, 180.0, angle.MaxValue())

	got, err := sys.InputByID(angle.ID())
	require.NoError(t, err)
	assert.Same(t, angle, got)

	got, err = sys.VariableByName("speed")
	require.NoError(t, err)
	assert.Same(t, sys.OutputVariable(), got)

	require.NoError(t, sys.RemoveInput(angle.ID()))
	_, err = sys.InputByID(angle.ID())
	assert.ErrorIs(t, err, fuzzy.ErrVariableNotFound)
	_, err = sys.Input(4)
	assert.ErrorIs(t, err, fuzzy.ErrVariableNotFound)
	_, err = sys.VariableByName("nope")
	assert.ErrorIs(t, err, fuzzy.ErrVariableNotFound)
	assert.ErrorIs(t, sys.SetValue("nope", 1), fuzzy.ErrVariableNotFound)
	assert.ErrorIs(t, sys.SetValue("distance", math.NaN()), variable.ErrNonFinite)
}

// TestNodes covers node management and target validation.
func TestNodes(t *testing.T) {
	sys := followSystem(t)
	assert.Equal(t, 3, sys.NumNodes())

	n, err := sys.NodeByName("medium")
	require.NoError(t, err)
	byID, err := sys.NodeByID(n.ID)
	require.NoError(t, err)
	assert.Equal(t, n, byID)
	at, err := sys.Node(1)
	require.NoError(t, err)
	assert.Equal(t, n, at)

	near, _ := sys.TrapezoidByName("distance", "near")
	assert.ErrorIs(t, sys.SetTarget(n.ID, near.ID), fuzzy.ErrInvalidTarget)
	assert.ErrorIs(t, sys.Connect(n.ID, inference.Right, "ghost"), fuzzy.ErrUnknownOperand)
	assert.ErrorIs(t, sys.Connect("ghost", inference.Left, near.ID), fuzzy.ErrNodeNotFound)
	_, err = sys.AddNode("bad", inference.Operator(0))
	assert.ErrorIs(t, err, inference.ErrUnknownOperator)

	require.NoError(t, sys.SetNodeName(n.ID, "mid"))
	_, err = sys.NodeByName("mid")
	assert.NoError(t, err)

	require.NoError(t, sys.RemoveNode(n.ID))
	assert.Equal(t, 2, sys.NumNodes())
	assert.ErrorIs(t, sys.RemoveNode(n.ID), fuzzy.ErrNodeNotFound)
	_, err = sys.Node(5)
	assert.ErrorIs(t, err, fuzzy.ErrNodeNotFound)

	// with the medium rule gone its target keeps height 1
	require.NoError(t, sys.SetValue("distance", 90))
	require.NoError(t, sys.Evaluate())
	h, _ := sys.Activation(targetID(t, sys, "medium"))
	assert.Equal(t, 1.0, h)
}

// TestObserver receives one report per Output.
func TestObserver(t *testing.T) {
	rec := &recorder{}
	sys := followSystem(t, fuzzy.WithObserver(rec), fuzzy.WithID("follow-1"))

	out := outputAt(t, sys, 90)
	require.Len(t, rec.reports, 1)
	r := rec.reports[0]
	assert.Equal(t, "follow-1", r.SystemID)
	assert.Equal(t, "follow", r.SystemName)
	assert.Equal(t, out, r.Output)
	assert.InDelta(t, 10, r.Raw, 1e-6)
	assert.Equal(t, 3, r.Nodes)
	assert.Zero(t, r.Cycles)
	assert.False(t, r.Degenerate)
}

// TestUninitialized rejects the zero value.
func TestUninitialized(t *testing.T) {
	var sys fuzzy.System

	_, err := sys.Output()
	assert.ErrorIs(t, err, fuzzy.ErrUninitialized)
	assert.ErrorIs(t, sys.Evaluate(), fuzzy.ErrUninitialized)
	assert.ErrorIs(t, sys.Validate(), fuzzy.ErrUninitialized)
	_, err = sys.AddNode("n", inference.And)
	assert.ErrorIs(t, err, fuzzy.ErrUninitialized)
	_, err = sys.Snapshot()
	assert.ErrorIs(t, err, fuzzy.ErrUninitialized)
	assert.False(t, sys.IsCycleReference("x"))
}

// TestWithSubdivision reaches the output variable.
func TestWithSubdivision(t *testing.T) {
	sys, err := fuzzy.New(fuzzy.WithSubdivision(200))
	require.NoError(t, err)
	assert.Equal(t, 200, sys.OutputVariable().Subdivision())
	assert.NotEmpty(t, sys.ID())
	assert.Nil(t, sys.Registry())
}
