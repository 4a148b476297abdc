package semicrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toyDataWithSegments(t *testing.T) *Data {
	t.Helper()
	d := NewData("toy", []Row{{"x"}, {"y"}})
	seg0, err := NewSegment(0, 0, Label(0))
	require.NoError(t, err)
	seg1, err := NewSegment(1, 1, Label(1))
	require.NoError(t, err)
	d.Segments = Segments{seg0, seg1}
	return d
}

func TestComputeSequenceGradient_LikelihoodIsObservedMinusLogZ(t *testing.T) {
	data := toyDataWithSegments(t)
	labels := NewLabels(2)

	sg, err := computeSequenceGradient([]float64{0}, constFeature{}, labels, data, 2, 1, false, 0, true)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, sg.Z, 1e-9)
	assert.InDelta(t, 0.0, sg.WG, 1e-9) // weights[0]=0, so every WG call (score=weights[0]) is 0
	assert.InDelta(t, -2.0794415416798357, sg.L, 1e-9) // WG - log(Z) = 0 - log(8)
}

func TestComputeSequenceGradient_GradientIsObservedMinusExpected(t *testing.T) {
	data := toyDataWithSegments(t)
	labels := NewLabels(2)

	sg, err := computeSequenceGradient([]float64{0}, constFeature{}, labels, data, 2, 1, false, 0, true)
	require.NoError(t, err)

	require.Len(t, sg.Gradient, 1)
	// observed feature count is 2 (two ground-truth segments); expected is
	// 1.5 per TestComputeEta_MatchesHandComputedExpectedFeatureVector.
	assert.InDelta(t, 0.5, sg.Gradient[0], 1e-9)
}

func TestComputeSequenceGradient_RejectsSequenceWithNoSegmentation(t *testing.T) {
	data := NewData("toy", []Row{{"x"}})
	labels := NewLabels(2)

	_, err := computeSequenceGradient([]float64{0}, constFeature{}, labels, data, 2, 1, false, 0, false)
	assert.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestApplyRegularization_SubtractsFromLAndGradient(t *testing.T) {
	weights := []float64{2, 3}
	grad := []float64{1, 1}

	l := applyRegularization(weights, 0.5, 10.0, grad)

	// l2Norm2 = 4+9=13, rp*13 = 6.5
	assert.InDelta(t, 3.5, l, 1e-9)
	// grad[k] -= 2*rp*w[k]
	assert.InDelta(t, 1-2*0.5*2, grad[0], 1e-9)
	assert.InDelta(t, 1-2*0.5*3, grad[1], 1e-9)
}

func TestApplyRegularization_ToleratesNilGradient(t *testing.T) {
	weights := []float64{1, 1}
	l := applyRegularization(weights, 0.1, 5.0, nil)
	assert.InDelta(t, 5.0-0.1*2, l, 1e-9)
}
