package semicrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikelihood_Value_ReturnsNegatedL(t *testing.T) {
	seq := toyDataWithSegments(t)
	model := &Model{
		Weights: NewWeights(1), Feature: constFeature{}, Labels: NewLabels(2),
		Sequences: []*Data{seq}, MaxLength: 2, Flags: DisableRegularization,
	}
	l := NewLikelihood(model)

	v, err := l.Value([]float64{0})
	require.NoError(t, err)

	L, _, err := model.ComputeLikelihood(false)
	require.NoError(t, err)
	assert.InDelta(t, -L, v, 1e-9)
	assert.InDelta(t, v, l.SavedValue(), 1e-9)
}

func TestLikelihood_Grad_ReturnsNegatedGradient(t *testing.T) {
	seq := toyDataWithSegments(t)
	model := &Model{
		Weights: NewWeights(1), Feature: constFeature{}, Labels: NewLabels(2),
		Sequences: []*Data{seq}, MaxLength: 2, Flags: DisableRegularization,
	}
	l := NewLikelihood(model)

	g, err := l.Grad([]float64{0})
	require.NoError(t, err)
	require.Len(t, g, 1)
	assert.InDelta(t, -0.5, g[0], 1e-9)
}

func TestLikelihood_PreProcess_CopiesCurrentWeightsOut(t *testing.T) {
	model := &Model{Weights: &Weights{Values: []float64{1, 2, 3}}}
	l := NewLikelihood(model)

	x := make([]float64, 3)
	l.PreProcess(x)
	assert.Equal(t, []float64{1, 2, 3}, x)
}

func TestLikelihood_PostProcess_InstallsFinalWeights(t *testing.T) {
	model := &Model{Weights: &Weights{Values: make([]float64, 2)}}
	l := NewLikelihood(model)

	l.PostProcess([]float64{9, 10})
	assert.Equal(t, []float64{9, 10}, model.Weights.Values)
}
