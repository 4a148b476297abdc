package semicrf

import "math"

// engine bundles everything the alpha/eta/V recursions share for one
// sequence: the weights, feature function, labels, the sequence itself,
// and the WG-cache. It owns no state beyond that; per-recursion tables are
// allocated by their respective callers and passed in explicitly.
type engine struct {
	weights   []float64
	feature   Feature
	labels    Labels
	data      *Data
	maxLength int
	dim       int
	wgCache   *wgCache // nil when caching is disabled
	scratch   []float64
}

func newEngine(weights []float64, feature Feature, labels Labels, data *Data, maxLength, dim int, cacheEnabled bool, cacheSize int) *engine {
	e := &engine{
		weights:   weights,
		feature:   feature,
		labels:    labels,
		data:      data,
		maxLength: maxLength,
		dim:       dim,
		scratch:   make([]float64, dim),
	}
	if cacheEnabled {
		e.wgCache = newWGCache(cacheSize)
	}
	return e
}

// computeWG returns <weights, f(y,yPrev,data,j,i)> and writes the feature
// vector into outGradient (length dim). It consults the WG-cache when one
// is configured (spec §4.2); cache misses and disabled-cache calls both
// dispatch to the feature function.
func (e *engine) computeWG(y, yPrev Label, i, d int, outGradient []float64) (float64, error) {
	j := i - d + 1

	if e.wgCache == nil {
		return e.feature.WG(e.weights, y, yPrev, e.data, j, i, outGradient)
	}

	key := wgKey(y, yPrev, i, d, len(e.labels), e.data.Len(), e.maxLength)
	if score, vec, ok := e.wgCache.lookup(key); ok {
		copy(outGradient, vec)
		return score, nil
	}

	score, err := e.feature.WG(e.weights, y, yPrev, e.data, j, i, outGradient)
	if err != nil {
		return 0, err
	}
	e.wgCache.install(key, score, outGradient)
	return score, nil
}

// wgCacheHitRate returns the WG-cache's observed hit rate, or 0 when
// caching is disabled. Diagnostic only; does not affect correctness.
func (e *engine) wgCacheHitRate() float64 {
	if e.wgCache == nil {
		return 0
	}
	return e.wgCache.hitRate()
}

// checkFinite guards against Inf/NaN creeping into a log-domain
// accumulation (spec §4.3, §4.4, §4.6's numerical guards).
func checkFinite(v float64, where string) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return NewNumericalError(where)
	}
	return nil
}

// durationRange returns the inclusive [1, min(maxLength, i+1)] bound on
// segment duration ending at position i.
func durationRange(i, maxLength int) int {
	if i+1 < maxLength {
		return i + 1
	}
	return maxLength
}
