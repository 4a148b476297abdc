package semicrf

import "github.com/sirupsen/logrus"

// Predictor orchestrates prediction: for each sequence in an inference
// corpus, it runs the Viterbi recursion and back-tracking and annotates the
// sequence with its predicted segments (spec §4.6, "Driver" component).
// Grounded on the original's Predictor class (SemiCrf.cpp): preProcess/
// compute/postProcess lifecycle.
type Predictor struct {
	MaxLength int
	Flags     Flags
	CacheSize int
}

// Predict configures feature from weights' metadata and annotates every
// sequence in corpus with its predicted Segments.
func (p *Predictor) Predict(weights *Weights, corpus *Corpus, feature Feature) error {
	if !p.Flags.Has(DisableDateVersion) {
		logrus.Info("semicrf predictor")
	}
	logrus.Info("prediction...")

	maxLength := p.MaxLength
	if maxLength < 1 {
		if weights.MaxLength < 1 {
			return NewInputError("no maxLength specified and weight file does not declare one", nil)
		}
		maxLength = weights.MaxLength
	}

	if err := feature.SetXDim(weights.XDim); err != nil {
		return err
	}
	if err := feature.SetYDim(weights.YDim); err != nil {
		return err
	}
	feature.SetMaxLength(maxLength)

	dim := feature.GetDim()
	if weights.Len() != dim {
		return NewDimensionError("dimension mismatch between feature function and weight file")
	}
	if corpus.Feature != "" && corpus.Feature != weights.Feature {
		return NewInputError("feature mismatch between data file and weight file", nil)
	}

	labels := NewLabels(weights.YDim)
	cacheEnabled := !p.Flags.Has(DisableWGCache)

	for _, page := range corpus.Pages {
		for _, seq := range page.Sequences {
			seq.SetDurationStats(weights.Mean, weights.Variance)

			e := newEngine(weights.Values, feature, labels, seq, maxLength, dim, cacheEnabled, p.CacheSize)
			table := newVTable(seq.Len(), len(labels))

			bestY, bestV, err := computeViterbi(e, table)
			if err != nil {
				return err
			}
			if p.Flags.Has(EnableLikelihoodOnly) {
				logrus.Infof("WG(maxV)= %+.6e", bestV)
			}

			segs, err := backtrack(table, seq.Len(), bestY)
			if err != nil {
				return err
			}
			seq.Segments = segs

			logrus.Debugf("sequence %q: predicted %d segments, V=%.6e, cache_hit_rate=%.3f", seq.Title, len(segs), bestV, e.wgCacheHitRate())
		}
	}

	return nil
}
