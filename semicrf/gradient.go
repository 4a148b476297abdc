package semicrf

import "math"

// sequenceGradient is one sequence's contribution to the corpus-level log
// likelihood and its gradient (spec §4.5): L contribution WG - log(Z), and
// gradient contribution G - E[f].
type sequenceGradient struct {
	L        float64
	Gradient []float64
	Z        float64
	WG       float64
	HitRate  float64
}

// computeSequenceGradient runs alpha, eta (only if withGradient), and the
// observed-feature-sum pass over data's ground-truth segments, assembling
// one sequence's (L, grad) contribution. data must already carry a valid
// segmentation (spec §3's cover invariant).
func computeSequenceGradient(weights []float64, feature Feature, labels Labels, data *Data, maxLength, dim int, cacheEnabled bool, cacheSize int, withGradient bool) (*sequenceGradient, error) {
	e := newEngine(weights, feature, labels, data, maxLength, dim, cacheEnabled, cacheSize)

	observed, wg, err := observedFeatureSum(e, data, dim)
	if err != nil {
		return nil, err
	}

	alphaTab := newAlphaTable(data.Len(), len(labels))
	z, err := computeAlpha(e, alphaTab)
	if err != nil {
		return nil, err
	}
	if err := checkFinite(z, "partition function Z"); err != nil {
		return nil, err
	}
	if z <= 0 {
		return nil, NewNumericalError("non-positive partition function Z")
	}

	result := &sequenceGradient{
		L:  wg - math.Log(z),
		Z:  z,
		WG: wg,
	}
	if e.wgCache != nil {
		result.HitRate = e.wgCache.hitRate()
	}

	if withGradient {
		etaTab := newEtaTable(data.Len(), len(labels), dim)
		expected, err := computeEta(e, alphaTab, etaTab, z)
		if err != nil {
			return nil, err
		}
		result.Gradient = sub(observed, expected)
	}

	return result, nil
}

// observedFeatureSum computes G = sum over ground-truth segments of
// f(y,yPrev,i,d) and WG = <w,G>, per spec §4.5.
func observedFeatureSum(e *engine, data *Data, dim int) ([]float64, float64, error) {
	if len(data.Segments) == 0 {
		return nil, 0, NewInputError("sequence has no ground-truth segmentation", nil)
	}

	g := make([]float64, dim)
	wg := 0.0
	yPrev := ZERO
	local := make([]float64, dim)

	for _, seg := range data.Segments {
		d := seg.Duration()
		score, err := e.computeWG(seg.Label, yPrev, seg.End, d, local)
		if err != nil {
			return nil, 0, err
		}
		wg += score
		addScaled(g, local, 1)
		yPrev = seg.Label
	}

	return g, wg, nil
}

// applyRegularization subtracts rp*||w||^2 from L and subtracts 2*rp*w from
// the gradient in place, per spec §4.5. Callers skip this when
// DISABLE_REGULARIZATION is set.
func applyRegularization(weights []float64, rp float64, l float64, grad []float64) float64 {
	l -= rp * l2Norm2(weights)
	if grad != nil {
		for k, w := range weights {
			grad[k] -= 2 * rp * w
		}
	}
	return l
}
