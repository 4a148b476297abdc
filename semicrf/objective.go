package semicrf

// Likelihood adapts a Model onto the optimize.ObjectiveFunction contract
// (spec §4.8), mirroring the original's Likelihood class: the optimizer
// minimizes, so Value and Grad return -L and -grad(L) respectively.
type Likelihood struct {
	model      *Model
	savedValue float64
}

// NewLikelihood wraps model for use by an optimize.Optimizer.
func NewLikelihood(model *Model) *Likelihood {
	return &Likelihood{model: model}
}

func (l *Likelihood) PreProcess(x []float64) {
	copy(x, l.model.Weights.Values)
}

func (l *Likelihood) Value(x []float64) (float64, error) {
	copy(l.model.Weights.Values, x)
	L, _, err := l.model.ComputeLikelihood(false)
	if err != nil {
		return 0, err
	}
	l.savedValue = -L
	return l.savedValue, nil
}

func (l *Likelihood) Grad(x []float64) ([]float64, error) {
	copy(l.model.Weights.Values, x)
	L, grad, err := l.model.ComputeLikelihood(true)
	if err != nil {
		return nil, err
	}
	l.savedValue = -L
	neg := make([]float64, len(grad))
	for k, g := range grad {
		neg[k] = -g
	}
	return neg, nil
}

func (l *Likelihood) SavedValue() float64 {
	return l.savedValue
}

func (l *Likelihood) PostProcess(x []float64) {
	copy(l.model.Weights.Values, x)
}
