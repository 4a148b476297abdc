package semicrf

import "math"

// computeAlpha fills the alpha table bottom-up (ascending i) and returns Z =
// sum_y alpha(S-1,y), the partition function (spec §4.3).
//
// alpha(-1,y) == 1 for all y is the base case and is never stored in the
// table. The boundary rule forces the prior label at position 0 to be
// ZERO. Filling ascending in i satisfies the dependency order naturally:
// alpha(i,y) only ever reads alpha(i-d,*) with d >= 1, i.e. strictly
// earlier rows, which are already filled (spec §5).
func computeAlpha(e *engine, table *alphaTable) (float64, error) {
	s := e.data.Len()

	for i := 0; i < s; i++ {
		maxD := durationRange(i, e.maxLength)
		for _, y := range e.labels {
			v := 0.0
			for d := 1; d <= maxD; d++ {
				prev := i - d
				for _, yPrev := range e.labels {
					if i == 0 && yPrev != ZERO {
						continue
					}
					aprev := alphaAt(table, prev, yPrev)

					score, err := e.computeWG(y, yPrev, i, d, e.scratch)
					if err != nil {
						return 0, err
					}
					contribution := aprev * math.Exp(score)
					v += contribution
					if err := checkFinite(v, "alpha"); err != nil {
						return 0, err
					}
				}
			}
			table.set(i, y, v)
		}
	}

	z := 0.0
	for _, y := range e.labels {
		z += alphaAt(table, s-1, y)
	}
	return z, nil
}

// alphaAt returns alpha(i,y), handling the i==-1 base case (value 1,
// not stored) transparently.
func alphaAt(table *alphaTable, i int, y Label) float64 {
	if i == -1 {
		return 1.0
	}
	v, filled := table.get(i, y)
	if !filled {
		// Bottom-up fill guarantees this never happens for i >= 0 reached
		// from computeAlpha's ascending loop.
		panic("alpha: read of unfilled entry — bottom-up fill invariant violated")
	}
	return v
}
