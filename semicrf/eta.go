package semicrf

import "math"

// computeEta fills the eta table bottom-up, given an already-filled alpha
// table for the same sequence, and returns E[f] = (sum_y eta(S-1,y)) / Z.
//
// Only the vector form of eta is implemented; the scalar, per-coordinate
// form from the original source is redundant with it and is not ported
// (spec §9: "the scalar form is assumed dead and omitted"). Each (d,yPrev)
// term allocates its own local feature buffer so concurrent use of the
// driver's shared scratch buffer inside alpha's computeWG calls cannot
// corrupt an in-flight eta accumulation (spec §4.4, §9).
func computeEta(e *engine, alpha *alphaTable, eta *etaTable, z float64) ([]float64, error) {
	s := e.data.Len()

	for i := 0; i < s; i++ {
		maxD := durationRange(i, e.maxLength)
		for _, y := range e.labels {
			acc := make([]float64, e.dim)
			for d := 1; d <= maxD; d++ {
				prev := i - d
				for _, yPrev := range e.labels {
					if i == 0 && yPrev != ZERO {
						continue
					}

					local := make([]float64, e.dim)
					score, err := e.computeWG(y, yPrev, i, d, local)
					if err != nil {
						return nil, err
					}
					ex := math.Exp(score)
					if err := checkFinite(ex, "eta"); err != nil {
						return nil, err
					}

					aprev := alphaAt(alpha, prev, yPrev)
					etaPrev := etaAt(eta, prev, yPrev, e.dim)

					// cof = etaPrev + aprev*local ; acc += cof*ex
					cof := make([]float64, e.dim)
					scaleInto(cof, local, aprev)
					addScaled(cof, etaPrev, 1)
					addScaled(acc, cof, ex)
					for k := range acc {
						if err := checkFinite(acc[k], "eta"); err != nil {
							return nil, err
						}
					}
				}
			}
			eta.set(i, y, acc)
		}
	}

	expected := make([]float64, e.dim)
	for _, y := range e.labels {
		v := etaAt(eta, s-1, y, e.dim)
		addScaled(expected, v, 1)
	}
	for k := range expected {
		expected[k] /= z
	}
	return expected, nil
}

// etaAt returns eta(i,y), handling the i==-1 base case (the zero vector,
// not stored) transparently. The returned slice for i >= 0 is the table's
// own payload and must not be mutated by the caller.
func etaAt(table *etaTable, i int, y Label, dim int) []float64 {
	if i == -1 {
		return make([]float64, dim)
	}
	v, filled := table.get(i, y)
	if !filled {
		panic("eta: read of unfilled entry — bottom-up fill invariant violated")
	}
	return v
}
