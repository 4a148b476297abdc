package semicrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictor_Predict_AnnotatesSequenceWithBestSegmentation(t *testing.T) {
	data := NewData("toy", []Row{{"x"}, {"y"}})
	corpus := &Corpus{
		Feature: "const",
		Pages:   []*Page{{Title: "p", Sequences: []*Data{data}}},
	}
	weights := &Weights{Values: []float64{0}, XDim: 1, YDim: 2, Feature: "const", MaxLength: 2}

	p := &Predictor{MaxLength: 0, Flags: DisableDateVersion}
	require.NoError(t, p.Predict(weights, corpus, constFeature{}))

	require.Len(t, data.Segments, 2)
	assert.Equal(t, 0, data.Segments[0].Start)
	assert.Equal(t, 1, data.Segments[1].End)
}

func TestPredictor_Predict_RejectsMissingMaxLength(t *testing.T) {
	data := NewData("toy", []Row{{"x"}})
	corpus := &Corpus{Pages: []*Page{{Sequences: []*Data{data}}}}
	weights := &Weights{Values: []float64{0}, XDim: 1, YDim: 2}

	p := &Predictor{Flags: DisableDateVersion}
	err := p.Predict(weights, corpus, constFeature{})
	assert.Error(t, err)
	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestPredictor_Predict_RejectsFeatureMismatch(t *testing.T) {
	data := NewData("toy", []Row{{"x"}})
	corpus := &Corpus{Feature: "digit", Pages: []*Page{{Sequences: []*Data{data}}}}
	weights := &Weights{Values: []float64{0}, XDim: 1, YDim: 2, Feature: "const", MaxLength: 2}

	p := &Predictor{Flags: DisableDateVersion}
	err := p.Predict(weights, corpus, constFeature{})
	assert.Error(t, err)
}

func TestPredictor_Predict_RejectsDimensionMismatch(t *testing.T) {
	data := NewData("toy", []Row{{"x"}})
	corpus := &Corpus{Pages: []*Page{{Sequences: []*Data{data}}}}
	weights := &Weights{Values: []float64{0, 0}, XDim: 1, YDim: 2, MaxLength: 2} // len 2 != constFeature dim 1

	p := &Predictor{Flags: DisableDateVersion}
	err := p.Predict(weights, corpus, constFeature{})
	assert.Error(t, err)
	var dimErr *DimensionError
	assert.ErrorAs(t, err, &dimErr)
}
