package buffer

import "fmt"

// Range is a half-open character range [Start, End).
type Range struct {
	Start int
	End   int
}

// NewRange returns the normalized range between two indices in any order.
func NewRange(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Len returns the number of characters covered.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range covers no characters.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if i lies within [Start, End).
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

// Clamp returns the range clamped to [0, n].
func (r Range) Clamp(n int) Range {
	return Range{Start: clamp(r.Start, 0, n), End: clamp(r.End, 0, n)}
}

// String returns a string representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
