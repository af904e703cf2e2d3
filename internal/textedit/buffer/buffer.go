package buffer

// Buffer holds the content, cursor, selection and viewport of one text field.
type Buffer struct {
	content     []rune
	cursor      int
	selection   Range
	hasSel      bool
	viewport    int
	constraints Constraints
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Text returns the content as a string.
func (b *Buffer) Text() string {
	return string(b.content)
}

// Runes returns a copy of the content.
func (b *Buffer) Runes() []rune {
	out := make([]rune, len(b.content))
	copy(out, b.content)
	return out
}

// Len returns the number of characters.
func (b *Buffer) Len() int {
	return len(b.content)
}

// At returns the character at index i, or 0 when out of range.
func (b *Buffer) At(i int) rune {
	if i < 0 || i >= len(b.content) {
		return 0
	}
	return b.content[i]
}

// Slice returns content[start:end] clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	r := NewRange(start, end).Clamp(len(b.content))
	return string(b.content[r.Start:r.End])
}

// Constraints returns the validity constraints.
func (b *Buffer) Constraints() Constraints {
	return b.constraints
}

// SetConstraints replaces the validity constraints. Existing content longer
// than a new MaxLength is truncated.
func (b *Buffer) SetConstraints(c Constraints) {
	b.constraints = c
	if c.MaxLength > 0 && len(b.content) > c.MaxLength {
		b.content = b.content[:c.MaxLength]
		b.clampIndices()
	}
}

// ReadOnly reports whether content mutations are rejected.
func (b *Buffer) ReadOnly() bool {
	return b.constraints.ReadOnly
}

// Cursor returns the cursor index.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, clamped to [0, Len()].
func (b *Buffer) SetCursor(i int) {
	b.cursor = clamp(i, 0, len(b.content))
}

// Selection returns the selection and whether one exists.
func (b *Buffer) Selection() (Range, bool) {
	return b.selection, b.hasSel
}

// HasSelection returns true if a selection exists.
func (b *Buffer) HasSelection() bool {
	return b.hasSel
}

// SetSelection selects between a and b in either order, clamped to the
// content. An empty range is stored as an (empty) selection; callers decide
// whether to clear it.
func (b *Buffer) SetSelection(a, c int) {
	b.selection = NewRange(a, c).Clamp(len(b.content))
	b.hasSel = true
}

// ClearSelection removes the selection.
func (b *Buffer) ClearSelection() {
	b.selection = Range{}
	b.hasSel = false
}

// SelectedText returns the selected characters, or "".
func (b *Buffer) SelectedText() string {
	if !b.hasSel {
		return ""
	}
	return string(b.content[b.selection.Start:b.selection.End])
}

// ViewportStart returns the index of the first visible character.
func (b *Buffer) ViewportStart() int {
	return b.viewport
}

// SetViewportStart sets the first visible character, clamped to [0, Len()].
func (b *Buffer) SetViewportStart(i int) {
	b.viewport = clamp(i, 0, len(b.content))
}

// AcceptsRune reports whether r satisfies the character filter of the
// constraints. It does not check length or read-only state.
func (b *Buffer) AcceptsRune(r rune) bool {
	if b.constraints.NumericOnly {
		return IsDigit(r)
	}
	return true
}

// HasRoom reports whether n more characters fit under MaxLength.
func (b *Buffer) HasRoom(n int) bool {
	return b.constraints.MaxLength <= 0 || len(b.content)+n <= b.constraints.MaxLength
}

// InsertAt inserts r at index i, ignoring constraints other than bounds,
// and shifts the cursor when it sits at or after i. Callers check
// AcceptsRune and HasRoom first.
func (b *Buffer) InsertAt(i int, r rune) {
	i = clamp(i, 0, len(b.content))
	b.content = append(b.content, 0)
	copy(b.content[i+1:], b.content[i:])
	b.content[i] = r
	if b.cursor >= i {
		b.cursor++
	}
	b.clampIndices()
}

// Delete removes the characters in r (clamped) and returns how many were
// removed. The cursor is moved to r.Start when it was inside or after the
// range, and the selection is cleared.
func (b *Buffer) Delete(r Range) int {
	r = r.Clamp(len(b.content))
	if r.IsEmpty() {
		return 0
	}
	b.content = append(b.content[:r.Start], b.content[r.End:]...)
	switch {
	case b.cursor >= r.End:
		b.cursor -= r.Len()
	case b.cursor > r.Start:
		b.cursor = r.Start
	}
	b.ClearSelection()
	b.clampIndices()
	return r.Len()
}

// SetText replaces the content, truncated to MaxLength. The cursor,
// selection and viewport are clamped to the new content.
func (b *Buffer) SetText(text string) {
	runes := []rune(text)
	if limit := b.constraints.MaxLength; limit > 0 && len(runes) > limit {
		runes = runes[:limit]
	}
	b.content = runes
	b.clampIndices()
}

// clampIndices restores the index invariants after the content changed.
func (b *Buffer) clampIndices() {
	n := len(b.content)
	b.cursor = clamp(b.cursor, 0, n)
	b.viewport = clamp(b.viewport, 0, n)
	if b.hasSel {
		b.selection = b.selection.Clamp(n)
	}
}

// IsDigit reports whether r is one of the ASCII digits accepted by numeric
// fields.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
