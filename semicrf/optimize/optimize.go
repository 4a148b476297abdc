// Package optimize provides the Semi-CRF optimizer abstraction (spec §4.8):
// an objective-function contract plus concrete BFGS and steepest-descent
// implementations selectable by name. BFGS delegates to
// gonum.org/v1/gonum/optimize; steepest descent (with optional AdaGrad
// scaling) is implemented directly since gonum's GradientDescent has no
// per-coordinate learning-rate hook.
package optimize

import "fmt"

// ObjectiveFunction is the contract an optimizer drives (spec §4.8). An
// implementation installs x into the model it wraps before evaluating.
type ObjectiveFunction interface {
	// PreProcess writes the current weights into x (length dim).
	PreProcess(x []float64)
	// Value installs x, recomputes the objective without gradient, and
	// returns it (the driver's sign convention: the optimizer minimizes,
	// so implementations return -L).
	Value(x []float64) (float64, error)
	// Grad installs x, recomputes the objective and its gradient, and
	// returns -gradient.
	Grad(x []float64) ([]float64, error)
	// SavedValue returns the most recently computed value without
	// recomputing anything.
	SavedValue() float64
	// PostProcess installs the final x as the model's weights.
	PostProcess(x []float64)
}

// Flags controls optimizer behavior; only ENABLE_ADAGRAD is currently
// recognized (spec §4.8).
type Flags uint

const (
	EnableAdaGrad Flags = 1 << iota
)

// Settings are the hyperparameters common to every optimizer
// implementation (spec §4.8).
type Settings struct {
	E0           float64 // initial step size; steepest_decent only, see bfgsOptimizer.Optimize
	E1           float64 // relative/absolute convergence tolerance; bfgs uses it only as the gradient threshold
	MaxIteration int
	Flags        Flags
}

// Optimizer drives an ObjectiveFunction to a local optimum.
type Optimizer interface {
	Optimize() error
}

// New selects a concrete Optimizer by name. Unknown names fail, per spec
// §4.8 ("Selection is by name ... unknown names fail").
func New(name string, dim int, obj ObjectiveFunction, settings Settings) (Optimizer, error) {
	switch name {
	case "bfgs":
		return newBFGS(dim, obj, settings), nil
	case "steepest_decent":
		return newSteepestDescent(dim, obj, settings), nil
	default:
		return nil, fmt.Errorf("unknown optimizer method specified: %s", name)
	}
}
