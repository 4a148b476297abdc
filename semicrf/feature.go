package semicrf

// Feature is the abstract feature-function contract (spec §4.1). A concrete
// implementation computes, for a span [j,i] with label y and previous label
// yPrev, the raw feature vector f(y, yPrev, data, j, i) and its inner
// product with the current weight vector.
//
// Implementations must be deterministic for fixed inputs and must not
// mutate weights or data. outGradient must have length GetDim() and is
// overwritten (not accumulated into) by WG.
type Feature interface {
	// GetDim returns the feature dimension, determined by (xDim, yDim, and
	// the feature kind). Must equal len(weights).
	GetDim() int

	// SetXDim and SetYDim configure the input/label cardinalities the
	// feature function was built for. Called once before use.
	SetXDim(xDim int) error
	SetYDim(yDim int) error

	// SetMaxLength configures the maximum segment duration the feature
	// function should expect to be asked about.
	SetMaxLength(maxLength int)

	// WG writes f(y, yPrev, data, j, i) into outGradient (length GetDim())
	// and returns <weights, outGradient>. j <= i, i-j+1 <= maxLength.
	WG(weights []float64, y, yPrev Label, data *Data, j, i int, outGradient []float64) (float64, error)

	// Name returns the feature kind's registered name (persisted in model
	// files and corpus files as the "feature" field).
	Name() string
}
