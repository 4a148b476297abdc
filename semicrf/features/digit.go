// Package features provides reference semicrf.Feature implementations.
// Digit is the only one that ships here: a generic, non-domain-specific
// feature function operating on a single integer-valued input column, used
// by the test suite and as a template for richer domain-specific features
// (left as an extension point — see semicrf.Feature).
package features

import (
	"fmt"
	"strconv"

	"github.com/go-semicrf/crf/semicrf"
)

// Digit is grounded on the original implementation's Digit feature
// (FeatureFunction.cpp): three feature families per label y —
//   - y2x: for every token in the span, an indicator at y*xDim+xval, where
//     xval is the first column of the token row parsed as an integer index.
//   - y2y: a single indicator at yDim*xDim + yPrev*yDim + y.
//   - y2l: a Gaussian log-duration term, (d-mean[y])^2/(2*variance[y]) when
//     variance[y] exceeds 1e-5, else 1.0, at yDim*(xDim+yDim) + y.
type Digit struct {
	xDim      int
	yDim      int
	maxLength int
}

// New constructs an unconfigured Digit feature function. Callers must call
// SetXDim and SetYDim before GetDim or WG.
func New() *Digit {
	return &Digit{}
}

func (d *Digit) Name() string { return "digit" }

func (d *Digit) GetDim() int {
	return d.yDim * (d.xDim + d.yDim + 1)
}

func (d *Digit) SetXDim(xDim int) error {
	if xDim <= 0 {
		return semicrf.NewDimensionError("xDim must be positive")
	}
	d.xDim = xDim
	return nil
}

func (d *Digit) SetYDim(yDim int) error {
	if yDim <= 0 {
		return semicrf.NewDimensionError("yDim must be positive")
	}
	d.yDim = yDim
	return nil
}

func (d *Digit) SetMaxLength(maxLength int) {
	d.maxLength = maxLength
}

const digitVarianceEps = 1e-5

func (d *Digit) WG(weights []float64, y, yPrev semicrf.Label, data *semicrf.Data, j, i int, outGradient []float64) (float64, error) {
	if d.xDim <= 0 || d.yDim <= 0 {
		return 0, semicrf.NewFeatureError("digit: xDim/yDim not configured", nil)
	}
	if j < 0 || i < j || i >= data.Len() {
		return 0, semicrf.NewFeatureError(fmt.Sprintf("digit: span [%d,%d] out of range for sequence of length %d", j, i, data.Len()), nil)
	}

	dim0 := d.yDim * d.xDim
	dim1 := d.yDim * (d.xDim + d.yDim)
	dim := d.GetDim()
	if len(outGradient) != dim || len(weights) != dim {
		return 0, semicrf.NewDimensionError(fmt.Sprintf("digit: expected dim %d, got weights=%d outGradient=%d", dim, len(weights), len(outGradient)))
	}
	for k := range outGradient {
		outGradient[k] = 0
	}

	dur := i - j + 1
	yval := int(y)
	yPrevVal := int(yPrev)

	for l := 0; l < dur; l++ {
		row := data.Rows[j+l]
		if len(row) == 0 {
			return 0, semicrf.NewFeatureError(fmt.Sprintf("digit: empty row at position %d", j+l), nil)
		}
		xval, err := strconv.Atoi(row[0])
		if err != nil {
			return 0, semicrf.NewFeatureError(fmt.Sprintf("digit: non-integer column at position %d", j+l), err)
		}
		if xval < 0 || xval >= d.xDim {
			return 0, semicrf.NewFeatureError(fmt.Sprintf("digit: column value %d out of [0,%d)", xval, d.xDim), nil)
		}
		outGradient[yval*d.xDim+xval] += 1.0
	}

	outGradient[dim0+yPrevVal*d.yDim+yval] = 1.0

	mean := data.Mean(y)
	variance := data.Variance(y)
	var f float64
	if variance > digitVarianceEps {
		dm := float64(dur) - mean
		f = dm * dm / (2 * variance)
	} else {
		f = 1.0
	}
	outGradient[dim1+yval] = f

	score := 0.0
	for k, w := range weights {
		score += w * outGradient[k]
	}
	return score, nil
}

// NewByName constructs a feature function by name, matching the
// App::createFeatureFunction dispatch in the original source. "digit" and
// the empty name both resolve to Digit; any other name is a FeatureError.
func NewByName(name string) (semicrf.Feature, error) {
	switch name {
	case "digit", "":
		return New(), nil
	default:
		return nil, semicrf.NewFeatureError(fmt.Sprintf("unsupported feature specified: %q", name), nil)
	}
}
