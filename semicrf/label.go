package semicrf

// Label is a 0-based label index. ZERO is the distinguished label used as
// the "prior label before position 0" in every recursion's boundary case.
type Label int

// ZERO is the conventional prior label before position 0, so y_prev is
// well-defined at the boundary. It is also an ordinary member of every
// Labels set the recursions iterate over, so a predicted segment may carry
// it.
const ZERO Label = 0

// Labels is the ordered set of labels a model or corpus declares, indexed by
// their integer value. Labels[0] is always ZERO.
type Labels []Label

// NewLabels returns the label set {0, 1, ..., size-1}.
func NewLabels(size int) Labels {
	ls := make(Labels, size)
	for i := range ls {
		ls[i] = Label(i)
	}
	return ls
}

func (ls Labels) Size() int { return len(ls) }
