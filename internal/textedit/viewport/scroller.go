package viewport

// Scroller computes the first visible character of a single-line field.
type Scroller struct {
	// Width is the display window width in the Measurer's units.
	Width int
}

// NewScroller creates a scroller for a window of the given width.
func NewScroller(width int) *Scroller {
	return &Scroller{Width: width}
}

// Recompute returns the viewport start that keeps the cursor visible given
// the previous start. The returned start satisfies
//
//	m.Width(content[start:cursor]) <= s.Width
//
// whenever a single character fits the window. The window moves left when
// the cursor is before it, moves right when the cursor would fall past its
// right edge, and moves back left when the end of the content fits so that
// deletions never leave dead space on the right.
func (s *Scroller) Recompute(start, cursor int, content []rune, m Measurer) int {
	n := len(content)
	cursor = clamp(cursor, 0, n)
	start = clamp(start, 0, n)

	if cursor < start {
		start = cursor
	}
	for start < cursor && m.Width(string(content[start:cursor])) > s.Width {
		start++
	}
	for start > 0 && start <= cursor && m.Width(string(content[start-1:])) <= s.Width {
		start--
	}
	return start
}

// VisibleEnd returns the index one past the last character that fits in
// the window when drawing starts at start.
func (s *Scroller) VisibleEnd(start int, content []rune, m Measurer) int {
	n := len(content)
	start = clamp(start, 0, n)
	end := start
	for end < n && m.Width(string(content[start:end+1])) <= s.Width {
		end++
	}
	return end
}

// IndexAt maps an offset x from the left edge of the window to the nearest
// character boundary, given that drawing starts at start. Offsets left of
// the window map to start; offsets past the text map to len(content).
func (s *Scroller) IndexAt(x, start int, content []rune, m Measurer) int {
	n := len(content)
	start = clamp(start, 0, n)
	if x <= 0 {
		return start
	}

	prev := 0
	for i := start; i < n; i++ {
		w := m.Width(string(content[start : i+1]))
		if x < w {
			// Closer to the boundary before or after this character?
			if x-prev < w-x {
				return i
			}
			return i + 1
		}
		prev = w
	}
	return n
}

// OffsetOf returns the offset of the boundary before index i from the left
// edge of the window, or -1 when i is left of the window.
func (s *Scroller) OffsetOf(i, start int, content []rune, m Measurer) int {
	n := len(content)
	i = clamp(i, 0, n)
	start = clamp(start, 0, n)
	if i < start {
		return -1
	}
	return m.Width(string(content[start:i]))
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
