package semicrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddScaled_UnitAlphaUsesPlainAdd(t *testing.T) {
	dst := []float64{1, 2, 3}
	addScaled(dst, []float64{1, 1, 1}, 1)
	assert.Equal(t, []float64{2, 3, 4}, dst)
}

func TestAddScaled_ScalesBeforeAdding(t *testing.T) {
	dst := []float64{1, 2}
	addScaled(dst, []float64{2, 2}, 0.5)
	assert.Equal(t, []float64{2, 3}, dst)
}

func TestScaleInto_DoesNotMutateSource(t *testing.T) {
	src := []float64{1, 2, 3}
	dst := make([]float64, 3)
	scaleInto(dst, src, 2)
	assert.Equal(t, []float64{2, 4, 6}, dst)
	assert.Equal(t, []float64{1, 2, 3}, src)
}

func TestDot_ComputesInnerProduct(t *testing.T) {
	assert.Equal(t, 11.0, dot([]float64{1, 2}, []float64{3, 4}))
}

func TestSub_IsElementWiseDifference(t *testing.T) {
	assert.Equal(t, []float64{1, 1}, sub([]float64{3, 4}, []float64{2, 3}))
}

func TestL2Norm2_IsSumOfSquares(t *testing.T) {
	assert.Equal(t, 25.0, l2Norm2([]float64{3, 4}))
}
