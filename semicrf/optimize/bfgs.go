package optimize

import (
	"fmt"

	gonumopt "gonum.org/v1/gonum/optimize"
)

// bfgsOptimizer adapts the ObjectiveFunction contract onto
// gonum.org/v1/gonum/optimize's BFGS method.
type bfgsOptimizer struct {
	dim      int
	obj      ObjectiveFunction
	settings Settings
}

func newBFGS(dim int, obj ObjectiveFunction, settings Settings) *bfgsOptimizer {
	return &bfgsOptimizer{dim: dim, obj: obj, settings: settings}
}

// Optimize runs gonum's BFGS to completion. x0 is left for Minimize to
// evaluate itself: gonum's Settings.InitValues is meant to short-circuit
// the first evaluation by supplying a known (F, Gradient) pair, not to seed
// a starting point's coordinates, so setting only X there (with F=0 and a
// nil Gradient while BFGS.Needs().Gradient is true) makes Minimize either
// panic on the missing gradient or treat x0 as an already-converged
// stationary point — either way, zero real iterations run. Leaving
// InitValues nil makes Minimize evaluate Func/Grad at x0 like any other
// point.
//
// o.settings.E0 has no effect here: gonum's BFGS picks its own initial
// step length from curvature (the first search direction is -gradient,
// scaled by the quasi-Newton method's own line search), and exposes no
// seed-step-size hook the way GradientDescent's StepSizer does. E0 is
// honored by steepest_decent only; see Settings.E0's doc comment.
func (o *bfgsOptimizer) Optimize() error {
	x0 := make([]float64, o.dim)
	o.obj.PreProcess(x0)

	var gradErr error
	problem := gonumopt.Problem{
		Func: func(x []float64) float64 {
			v, err := o.obj.Value(x)
			if err != nil {
				gradErr = err
				return o.obj.SavedValue()
			}
			return v
		},
		Grad: func(grad, x []float64) {
			g, err := o.obj.Grad(x)
			if err != nil {
				gradErr = err
				return
			}
			copy(grad, g)
		},
	}

	settings := &gonumopt.Settings{
		GradientThreshold: o.settings.E1,
		MajorIterations:   o.settings.MaxIteration,
	}

	method := &gonumopt.BFGS{}

	result, err := gonumopt.Minimize(problem, x0, settings, method)
	if gradErr != nil {
		return gradErr
	}
	if err != nil {
		return fmt.Errorf("bfgs optimization failed: %w", err)
	}

	o.obj.PostProcess(result.X)
	return nil
}
