package semicrf

// computeDurationStats derives the per-label duration mean/variance from a
// training corpus's ground-truth segments. These populate each Data's
// duration statistics (spec §3) and are persisted into the weight file
// (spec §4.7) so a predictor can reconstruct them without re-deriving from
// training data it no longer has.
func computeDurationStats(sequences []*Data, labels Labels) (mean, variance map[Label]float64) {
	sums := map[Label]float64{}
	counts := map[Label]int{}

	for _, seq := range sequences {
		for _, seg := range seq.Segments {
			d := float64(seg.Duration())
			sums[seg.Label] += d
			counts[seg.Label]++
		}
	}

	mean = make(map[Label]float64, len(labels))
	for _, y := range labels {
		if counts[y] > 0 {
			mean[y] = sums[y] / float64(counts[y])
		}
	}

	sqDiffs := map[Label]float64{}
	for _, seq := range sequences {
		for _, seg := range seq.Segments {
			d := float64(seg.Duration())
			diff := d - mean[seg.Label]
			sqDiffs[seg.Label] += diff * diff
		}
	}

	variance = make(map[Label]float64, len(labels))
	for _, y := range labels {
		if counts[y] > 0 {
			variance[y] = sqDiffs[y] / float64(counts[y])
		}
	}

	return mean, variance
}
