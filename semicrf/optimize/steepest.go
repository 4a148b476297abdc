package optimize

import "math"

// steepestDescentOptimizer implements plain gradient descent against the
// ObjectiveFunction contract, with optional per-coordinate AdaGrad scaling
// (spec §4.8). Not delegated to gonum.org/v1/gonum/optimize.GradientDescent
// because that type's StepSizer hook is scalar, not per-coordinate — see
// DESIGN.md.
type steepestDescentOptimizer struct {
	dim      int
	obj      ObjectiveFunction
	settings Settings
}

func newSteepestDescent(dim int, obj ObjectiveFunction, settings Settings) *steepestDescentOptimizer {
	return &steepestDescentOptimizer{dim: dim, obj: obj, settings: settings}
}

// adaGradEps guards the AdaGrad denominator against division by zero on
// the first step, when no gradient history has accumulated yet.
const adaGradEps = 1e-8

func (o *steepestDescentOptimizer) Optimize() error {
	x := make([]float64, o.dim)
	o.obj.PreProcess(x)

	accum := make([]float64, o.dim) // AdaGrad running sum of squared gradients
	prevValue := math.Inf(1)

	for iter := 0; iter < o.settings.MaxIteration; iter++ {
		grad, err := o.obj.Grad(x)
		if err != nil {
			return err
		}

		gradInfNorm := 0.0
		for _, g := range grad {
			if a := math.Abs(g); a > gradInfNorm {
				gradInfNorm = a
			}
		}
		if gradInfNorm < o.settings.E1 {
			break
		}

		adaGradOn := o.settings.Flags&EnableAdaGrad != 0
		for k := range x {
			step := o.settings.E0
			if adaGradOn {
				accum[k] += grad[k] * grad[k]
				step = o.settings.E0 / math.Sqrt(adaGradEps+accum[k])
			}
			x[k] -= step * grad[k]
		}

		value, err := o.obj.Value(x)
		if err != nil {
			return err
		}
		if relativeConverged(prevValue, value, o.settings.E1) {
			prevValue = value
			break
		}
		prevValue = value
	}

	o.obj.PostProcess(x)
	return nil
}

// relativeConverged reports whether the relative change between prev and
// cur is below tol (spec §4.8's dual relative/absolute tolerance).
func relativeConverged(prev, cur, tol float64) bool {
	if math.IsInf(prev, 1) {
		return false
	}
	denom := math.Max(1.0, math.Abs(prev))
	return math.Abs(prev-cur)/denom < tol
}
