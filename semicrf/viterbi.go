package semicrf

// computeViterbi fills the V table bottom-up and returns the best final
// label and its value: max_y V(S-1,y) (spec §4.6).
//
// Tie-breaking: strictly-less-than comparison, so the first-encountered
// maximizer in (d ascending, then label ascending) iteration order wins
// ties. This matches the original's `if (maxV < v)` check and is
// documented per spec §9's requirement that implementations state their
// tie-breaking choice.
func computeViterbi(e *engine, table *vTable) (Label, float64, error) {
	s := e.data.Len()

	for i := 0; i < s; i++ {
		maxD := durationRange(i, e.maxLength)
		for _, y := range e.labels {
			best := vTableEntry{value: negInf, argDur: -1}
			for d := 1; d <= maxD; d++ {
				prev := i - d
				for _, yPrev := range e.labels {
					if i == 0 && yPrev != ZERO {
						continue
					}
					vPrev := vAt(table, prev, yPrev)
					score, err := e.computeWG(y, yPrev, i, d, e.scratch)
					if err != nil {
						return 0, 0, err
					}
					v := vPrev + score
					if err := checkFinite(v, "viterbi"); err != nil {
						return 0, 0, err
					}
					if best.value < v {
						best = vTableEntry{value: v, argDur: d, argPrev: yPrev}
					}
				}
			}
			if best.argDur < 1 {
				return 0, 0, NewFatalError("viterbi: no admissible duration found")
			}
			table.set(i, y, best)
		}
	}

	bestY := Label(0)
	bestV := negInf
	for _, y := range e.labels {
		entry, filled := table.get(s-1, y)
		if !filled {
			return 0, 0, NewFatalError("viterbi: final row not filled")
		}
		if bestV < entry.value {
			bestV = entry.value
			bestY = y
		}
	}
	return bestY, bestV, nil
}

// negInf is a large negative sentinel, not math.Inf(-1), so that adding a
// finite score never produces NaN (-Inf + finite is still -Inf, which is
// fine, but this keeps the sentinel visibly distinct in table dumps).
const negInf = -1e300

// vAt returns V(i,y), handling the i==-1 base case (value 0) transparently.
func vAt(table *vTable, i int, y Label) float64 {
	if i == -1 {
		return 0.0
	}
	entry, filled := table.get(i, y)
	if !filled {
		panic("viterbi: read of unfilled entry — bottom-up fill invariant violated")
	}
	return entry.value
}

// backtrack recovers the segmentation from a filled V table, starting at
// position S-1 with the best final label, per spec §4.6. The duration
// upper bound min(maxLength,i+1) guarantees the walk lands exactly on -1;
// any attempt to step past it is a FatalError (a bug, not a data problem).
func backtrack(table *vTable, length int, bestY Label) (Segments, error) {
	var segs Segments

	i := length - 1
	y := bestY
	for i >= 0 {
		entry, filled := table.get(i, y)
		if !filled {
			return nil, NewFatalError("backtrack: unfilled V entry")
		}
		if entry.argDur < 1 || entry.argDur > i+1 {
			return nil, NewFatalError("backtrack: duration escapes sequence domain")
		}
		start := i - entry.argDur + 1
		seg, err := NewSegment(start, i, y)
		if err != nil {
			return nil, err
		}
		segs = append(Segments{seg}, segs...)

		y = entry.argPrev
		i = start - 1
	}
	if i != -1 {
		return nil, NewFatalError("backtrack: walk did not terminate at -1")
	}
	return segs, nil
}
