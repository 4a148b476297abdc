package semicrf

import "gonum.org/v1/gonum/floats"

// addScaled adds alpha*x into dst in place: dst[i] += alpha*x[i].
// dst and x must have equal length.
func addScaled(dst, x []float64, alpha float64) {
	if alpha == 1 {
		floats.Add(dst, x)
		return
	}
	for i, v := range x {
		dst[i] += alpha * v
	}
}

// scaleInto writes alpha*x into dst (dst and x may be distinct buffers of
// equal length; dst is overwritten, not accumulated into).
func scaleInto(dst, x []float64, alpha float64) {
	copy(dst, x)
	floats.Scale(alpha, dst)
}

// dot returns the inner product of w and x, which must have equal length.
func dot(w, x []float64) float64 {
	return floats.Dot(w, x)
}

// sub returns a new slice holding a - b, element-wise.
func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// l2Norm2 returns the squared L2 norm of w.
func l2Norm2(w []float64) float64 {
	return dot(w, w)
}
