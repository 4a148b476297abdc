package semicrf

import (
	"github.com/sirupsen/logrus"
)

// Model bundles everything needed to compute the corpus-level log
// likelihood and its gradient: the weight vector, feature function, label
// set, training sequences, and the hyperparameters/flags that govern
// regularization and caching. It is the thing the optimizer's objective
// function adapter wraps (spec §4.8).
type Model struct {
	Weights   *Weights
	Feature   Feature
	Labels    Labels
	Sequences []*Data
	MaxLength int
	Rp        float64
	Flags     Flags
	CacheSize int
}

// Dim returns the feature dimension.
func (m *Model) Dim() int { return m.Feature.GetDim() }

// ComputeLikelihood sums each training sequence's (L, grad) contribution
// (spec §4.5), applying L2 regularization per sequence unless
// DisableRegularization is set (see DESIGN.md "Regularization scope").
// When withGrad is false, grad is nil and only L is computed.
func (m *Model) ComputeLikelihood(withGrad bool) (float64, []float64, error) {
	dim := m.Dim()
	L := 0.0
	var grad []float64
	if withGrad {
		grad = make([]float64, dim)
	}

	cacheEnabled := !m.Flags.Has(DisableWGCache)

	for _, seq := range m.Sequences {
		sg, err := computeSequenceGradient(m.Weights.Values, m.Feature, m.Labels, seq, m.MaxLength, dim, cacheEnabled, m.CacheSize, withGrad)
		if err != nil {
			return 0, nil, err
		}

		l := sg.L
		var seqGrad []float64
		if withGrad {
			seqGrad = sg.Gradient
		}
		if !m.Flags.Has(DisableRegularization) {
			l = applyRegularization(m.Weights.Values, m.Rp, l, seqGrad)
		}
		L += l
		if withGrad {
			addScaled(grad, seqGrad, 1)
		}

		if m.Flags.Has(EnableLikelihoodOnly) {
			logrus.Infof("L= %+.6e WG= %+.6e logZ= %+.6e hit_rate=%.3f", L, sg.WG, sg.WG-sg.L, sg.HitRate)
		}
		logrus.Debugf("sequence %q: L=%.6e Z=%.6e cache_hit_rate=%.3f", seq.Title, sg.L, sg.Z, sg.HitRate)
	}

	return L, grad, nil
}
