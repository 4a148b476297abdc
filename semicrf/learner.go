package semicrf

import (
	"github.com/sirupsen/logrus"

	"github.com/go-semicrf/crf/semicrf/optimize"
)

// Learner orchestrates training: it builds a Model from a training corpus
// and a feature function, then either runs gradient-based optimization or,
// under EnableLikelihoodOnly, computes L once and stops (spec §4.8,
// "Driver" component). Grounded on the original's Learner class
// (SemiCrf.cpp): preProcess/compute/postProcess lifecycle.
type Learner struct {
	MaxLength    int
	MaxIteration int
	E0, E1, Rp   float64
	Method       string
	Flags        Flags
	CacheSize    int
}

// Train runs the learner over corpus using feature, optionally seeded from
// initialWeights (nil means start from zero weights). It returns the
// trained weights, ready to Save.
func (l *Learner) Train(corpus *Corpus, feature Feature, initialWeights *Weights) (*Weights, error) {
	if !l.Flags.Has(DisableDateVersion) {
		logrus.Info("semicrf learner")
	}

	if err := feature.SetXDim(corpus.XDim); err != nil {
		return nil, err
	}
	if err := feature.SetYDim(corpus.YDim); err != nil {
		return nil, err
	}
	feature.SetMaxLength(l.MaxLength)

	dim := feature.GetDim()

	var weights *Weights
	if initialWeights != nil {
		if initialWeights.Len() != dim {
			return nil, NewDimensionError("initial weights length does not match feature dimension")
		}
		weights = initialWeights
	} else {
		weights = NewWeights(dim)
	}

	labels := corpus.Labels()
	sequences := corpus.AllSequences()
	if len(sequences) == 0 {
		return nil, NewInputError("training corpus has no sequences", nil)
	}

	mean, variance := computeDurationStats(sequences, labels)
	for _, seq := range sequences {
		seq.SetDurationStats(mean, variance)
	}

	model := &Model{
		Weights:   weights,
		Feature:   feature,
		Labels:    labels,
		Sequences: sequences,
		MaxLength: l.MaxLength,
		Rp:        l.Rp,
		Flags:     l.Flags,
		CacheSize: l.CacheSize,
	}

	if l.Flags.Has(EnableLikelihoodOnly) {
		logrus.Info("likelihood-only mode: skipping optimization")
		if _, _, err := model.ComputeLikelihood(false); err != nil {
			return nil, err
		}
	} else {
		logrus.Info("learning...")
		likelihood := NewLikelihood(model)

		optFlags := optimize.Flags(0)
		if !l.Flags.Has(DisableAdaGrad) {
			optFlags |= optimize.EnableAdaGrad
		}

		opt, err := optimize.New(l.Method, dim, likelihood, optimize.Settings{
			E0:           l.E0,
			E1:           l.E1,
			MaxIteration: l.MaxIteration,
			Flags:        optFlags,
		})
		if err != nil {
			return nil, NewInputError("selecting optimizer", err)
		}
		if err := opt.Optimize(); err != nil {
			return nil, err
		}
	}

	weights.XDim = corpus.XDim
	weights.YDim = corpus.YDim
	weights.Feature = feature.Name()
	weights.MaxLength = l.MaxLength
	weights.Mean = mean
	weights.Variance = variance

	return weights, nil
}
