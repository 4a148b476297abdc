package semicrf

import "fmt"

// Segment is a closed integer interval [Start, End] (0 <= Start <= End)
// assigned a single Label. Duration is End - Start + 1.
type Segment struct {
	Start int
	End   int
	Label Label
}

// NewSegment constructs a Segment, validating that the interval is
// non-empty and well-ordered.
func NewSegment(start, end int, label Label) (*Segment, error) {
	if start < 0 || end < start {
		return nil, NewFatalError(fmt.Sprintf("invalid segment [%d,%d]", start, end))
	}
	return &Segment{Start: start, End: end, Label: label}, nil
}

// Duration returns End - Start + 1.
func (s *Segment) Duration() int {
	return s.End - s.Start + 1
}

// Segments is an ordered, non-overlapping cover of a sequence.
type Segments []*Segment

// ValidateCover checks invariant 2 (§8): the segments start at 0, end at
// length-1, concatenate strictly, and each duration is within [1,maxLength].
func (ss Segments) ValidateCover(length, maxLength int) error {
	if len(ss) == 0 {
		return NewInputError("empty segmentation", nil)
	}
	if ss[0].Start != 0 {
		return NewInputError(fmt.Sprintf("segmentation does not start at 0 (starts at %d)", ss[0].Start), nil)
	}
	for i, seg := range ss {
		d := seg.Duration()
		if d < 1 || d > maxLength {
			return NewInputError(fmt.Sprintf("segment %d has duration %d outside [1,%d]", i, d, maxLength), nil)
		}
		if i > 0 && seg.Start != ss[i-1].End+1 {
			return NewInputError(fmt.Sprintf("segment %d does not continue from previous segment (start=%d, want %d)", i, seg.Start, ss[i-1].End+1), nil)
		}
	}
	last := ss[len(ss)-1]
	if last.End != length-1 {
		return NewInputError(fmt.Sprintf("segmentation does not end at %d (ends at %d)", length-1, last.End), nil)
	}
	return nil
}
