package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-semicrf/crf/semicrf"
)

const (
	label0 = semicrf.ZERO
	label1 = semicrf.Label(1)
)

func configuredDigit(t *testing.T, xDim, yDim, maxLength int) *Digit {
	t.Helper()
	d := New()
	require.NoError(t, d.SetXDim(xDim))
	require.NoError(t, d.SetYDim(yDim))
	d.SetMaxLength(maxLength)
	return d
}

func TestDigit_GetDim_MatchesYDimTimesXDimPlusYDimPlusOne(t *testing.T) {
	d := configuredDigit(t, 3, 2, 5)
	assert.Equal(t, 2*(3+2+1), d.GetDim())
}

func TestDigit_SetXDim_RejectsNonPositive(t *testing.T) {
	d := New()
	err := d.SetXDim(0)
	assert.Error(t, err)
	var dimErr *semicrf.DimensionError
	assert.ErrorAs(t, err, &dimErr)
}

func TestDigit_SetYDim_RejectsNonPositive(t *testing.T) {
	d := New()
	err := d.SetYDim(-1)
	assert.Error(t, err)
}

func TestDigit_WG_RejectsSpanOutOfRange(t *testing.T) {
	d := configuredDigit(t, 2, 2, 3)
	data := semicrf.NewData("t", []semicrf.Row{{"0"}})
	out := make([]float64, d.GetDim())

	_, err := d.WG(make([]float64, d.GetDim()), label1, label0, data, 0, 5, out)
	assert.Error(t, err)
	var featErr *semicrf.FeatureError
	assert.ErrorAs(t, err, &featErr)
}

func TestDigit_WG_RejectsDimensionMismatch(t *testing.T) {
	d := configuredDigit(t, 2, 2, 3)
	data := semicrf.NewData("t", []semicrf.Row{{"0"}})

	_, err := d.WG(make([]float64, 1), label1, label0, data, 0, 0, make([]float64, 1))
	assert.Error(t, err)
	var dimErr *semicrf.DimensionError
	assert.ErrorAs(t, err, &dimErr)
}

func TestDigit_WG_SetsY2XIndicatorForEachTokenInSpan(t *testing.T) {
	d := configuredDigit(t, 3, 2, 3)
	data := semicrf.NewData("t", []semicrf.Row{{"1"}, {"2"}})
	dim := d.GetDim()
	weights := make([]float64, dim)
	out := make([]float64, dim)

	y := label1
	score, err := d.WG(weights, y, label0, data, 0, 1, out)
	require.NoError(t, err)
	assert.Equal(t, 0.0, score) // zero weights -> zero score

	// y2x indicators at y*xDim+xval for each token's column value.
	assert.Equal(t, 1.0, out[int(y)*3+1])
	assert.Equal(t, 1.0, out[int(y)*3+2])
}

func TestDigit_WG_SetsY2YIndicatorAtYPrevYPosition(t *testing.T) {
	d := configuredDigit(t, 2, 2, 3)
	data := semicrf.NewData("t", []semicrf.Row{{"0"}})
	dim := d.GetDim()
	out := make([]float64, dim)

	yPrev := label1
	y := label0
	_, err := d.WG(make([]float64, dim), y, yPrev, data, 0, 0, out)
	require.NoError(t, err)

	dim0 := 2 * 2 // yDim*xDim
	assert.Equal(t, 1.0, out[dim0+int(yPrev)*2+int(y)])
}

func TestDigit_WG_UsesGaussianDurationTermWhenVarianceIsSignificant(t *testing.T) {
	d := configuredDigit(t, 2, 2, 3)
	data := semicrf.NewData("t", []semicrf.Row{{"0"}, {"0"}})
	data.SetDurationStats(map[semicrf.Label]float64{0: 3}, map[semicrf.Label]float64{0: 2})
	dim := d.GetDim()
	out := make([]float64, dim)

	_, err := d.WG(make([]float64, dim), label0, label0, data, 0, 1, out)
	require.NoError(t, err)

	dim1 := 2*2 + 2*2 // yDim*(xDim+yDim)
	dm := 2.0 - 3.0   // dur=2, mean=3
	want := dm * dm / (2 * 2)
	assert.InDelta(t, want, out[dim1+0], 1e-9)
}

func TestDigit_WG_FallsBackToOneWhenVarianceNegligible(t *testing.T) {
	d := configuredDigit(t, 2, 2, 3)
	data := semicrf.NewData("t", []semicrf.Row{{"0"}})
	dim := d.GetDim()
	out := make([]float64, dim)

	_, err := d.WG(make([]float64, dim), label0, label0, data, 0, 0, out)
	require.NoError(t, err)

	dim1 := 2*2 + 2*2
	assert.Equal(t, 1.0, out[dim1+0])
}

func TestDigit_WG_RejectsNonIntegerColumn(t *testing.T) {
	d := configuredDigit(t, 2, 2, 3)
	data := semicrf.NewData("t", []semicrf.Row{{"not-a-number"}})
	dim := d.GetDim()

	_, err := d.WG(make([]float64, dim), label0, label0, data, 0, 0, make([]float64, dim))
	assert.Error(t, err)
}

func TestDigit_Name_IsDigit(t *testing.T) {
	assert.Equal(t, "digit", New().Name())
}

func TestNewByName_ResolvesDigitOrEmptyString(t *testing.T) {
	f, err := NewByName("digit")
	require.NoError(t, err)
	assert.Equal(t, "digit", f.Name())

	f, err = NewByName("")
	require.NoError(t, err)
	assert.Equal(t, "digit", f.Name())
}

func TestNewByName_RejectsUnknownFeature(t *testing.T) {
	_, err := NewByName("jpn")
	assert.Error(t, err)
	var featErr *semicrf.FeatureError
	assert.ErrorAs(t, err, &featErr)
}

