package controller

import (
	"errors"
	"strconv"

	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/group"
)

// Controller applies editing operations to a single buffer.
//
// Controller is not safe for concurrent use; it belongs to one widget and is
// driven from the UI loop.
type Controller struct {
	buf      *buffer.Buffer
	mode     Mode
	anchor   int
	classify group.Classifier
	filter   CharFilter
	log      *logging.Logger

	listeners []listenerEntry
	nextID    int
}

type listenerEntry struct {
	id int
	fn Listener
}

// New creates a controller for buf.
func New(buf *buffer.Buffer, opts ...Option) *Controller {
	c := &Controller{
		buf:      buf,
		classify: group.ByWhitespace,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Buffer returns the controlled buffer.
func (c *Controller) Buffer() *buffer.Buffer {
	return c.buf
}

// Mode returns the pointer interaction state.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetFilter replaces the additional character filter (nil removes it).
func (c *Controller) SetFilter(f CharFilter) {
	c.filter = f
}

// SetClassifier replaces the classifier used for group navigation.
func (c *Controller) SetClassifier(cl group.Classifier) {
	if cl != nil {
		c.classify = cl
	}
}

// Subscribe registers a listener and returns a function that removes it.
// Listeners are called in registration order.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) emit(sig Signal) {
	// Copy so listeners may unsubscribe while being notified.
	listeners := make([]listenerEntry, len(c.listeners))
	copy(listeners, c.listeners)
	for _, l := range listeners {
		l.fn(sig, c.buf)
	}
}

// OnPointerDown handles a press at character index i inside the field.
// Clicked is always emitted; read-only fields do not start a selection.
func (c *Controller) OnPointerDown(i int) {
	if c.mode == Idle && !c.buf.ReadOnly() {
		c.buf.SetCursor(i)
		c.buf.ClearSelection()
		c.anchor = c.buf.Cursor()
		c.mode = Selecting
	}
	c.emit(Clicked)
}

// OnPointerMove extends the drag selection to character index i.
func (c *Controller) OnPointerMove(i int) {
	if c.mode != Selecting {
		return
	}
	c.buf.SetSelection(c.anchor, i)
	c.buf.SetCursor(i)
}

// OnPointerUp ends a drag. A drag that selected nothing is a plain click.
func (c *Controller) OnPointerUp() {
	if c.mode != Selecting {
		return
	}
	c.mode = Idle
	if sel, ok := c.buf.Selection(); ok && sel.IsEmpty() {
		c.buf.ClearSelection()
	}
}

// ExtendTo moves the cursor to i and selects from the selection anchor (or
// the current cursor) to i, as a Shift+click does.
func (c *Controller) ExtendTo(i int) {
	c.extendSelection(c.selectionAnchor(), i)
}

// CancelPointer abandons any drag in progress, keeping the selection.
func (c *Controller) CancelPointer() {
	c.OnPointerUp()
}

// activeSelection returns the selection when it covers at least one
// character.
func (c *Controller) activeSelection() (buffer.Range, bool) {
	sel, ok := c.buf.Selection()
	if !ok || sel.IsEmpty() {
		return buffer.Range{}, false
	}
	return sel, true
}

// InsertChar inserts r at the cursor, replacing the selection.
// It reports whether r was inserted.
func (c *Controller) InsertChar(r rune) bool {
	if c.buf.ReadOnly() {
		return false
	}
	if !c.buf.AcceptsRune(r) {
		c.log.Debug("rejected %q: numeric field", r)
		return false
	}
	if c.filter != nil && !c.filter.Accept(r, c.buf.Text()) {
		c.log.Debug("rejected %q: filter", r)
		return false
	}

	changed := false
	if sel, ok := c.activeSelection(); ok {
		c.buf.Delete(sel)
		c.buf.SetCursor(sel.Start)
		changed = true
	}
	c.buf.ClearSelection()

	inserted := false
	if c.buf.HasRoom(1) {
		c.buf.InsertAt(c.buf.Cursor(), r)
		inserted = true
		changed = true
	} else {
		c.log.Debug("rejected %q: max length %d", r, c.buf.Constraints().MaxLength)
	}

	if changed {
		c.emit(Changed)
	}
	return inserted
}

// DeleteSelection removes the selected characters and places the cursor at
// the start of the former selection. It reports whether anything was removed.
func (c *Controller) DeleteSelection() bool {
	if c.buf.ReadOnly() {
		return false
	}
	sel, ok := c.buf.Selection()
	if !ok {
		return false
	}
	n := c.buf.Delete(sel)
	c.buf.SetCursor(sel.Start)
	c.buf.ClearSelection()
	if n > 0 {
		c.emit(Changed)
	}
	return n > 0
}

// DeleteBackward removes the selection, or the character before the cursor.
func (c *Controller) DeleteBackward() bool {
	if c.buf.ReadOnly() {
		return false
	}
	if _, ok := c.activeSelection(); ok {
		return c.DeleteSelection()
	}
	c.buf.ClearSelection()
	cur := c.buf.Cursor()
	if cur == 0 {
		return false
	}
	c.buf.Delete(buffer.Range{Start: cur - 1, End: cur})
	c.emit(Changed)
	return true
}

// DeleteForward removes the selection, or the character after the cursor.
func (c *Controller) DeleteForward() bool {
	if c.buf.ReadOnly() {
		return false
	}
	if _, ok := c.activeSelection(); ok {
		return c.DeleteSelection()
	}
	c.buf.ClearSelection()
	cur := c.buf.Cursor()
	if cur >= c.buf.Len() {
		return false
	}
	c.buf.Delete(buffer.Range{Start: cur, End: cur + 1})
	c.emit(Changed)
	return true
}

// DeleteGroupBackward removes the selection, or everything from the start of
// the previous character group up to the cursor.
func (c *Controller) DeleteGroupBackward() bool {
	if c.buf.ReadOnly() {
		return false
	}
	if _, ok := c.activeSelection(); ok {
		return c.DeleteSelection()
	}
	c.buf.ClearSelection()
	cur := c.buf.Cursor()
	start := group.PreviousStart(c.buf.Runes(), cur, c.classify)
	if start == cur {
		return false
	}
	c.buf.Delete(buffer.Range{Start: start, End: cur})
	c.emit(Changed)
	return true
}

// DeleteGroupForward removes the selection, or everything from the cursor up
// to the start of the next character group.
func (c *Controller) DeleteGroupForward() bool {
	if c.buf.ReadOnly() {
		return false
	}
	if _, ok := c.activeSelection(); ok {
		return c.DeleteSelection()
	}
	c.buf.ClearSelection()
	cur := c.buf.Cursor()
	end := group.NextStart(c.buf.Runes(), cur, c.classify)
	if end == cur {
		return false
	}
	c.buf.Delete(buffer.Range{Start: cur, End: end})
	c.emit(Changed)
	return true
}

// MoveCursor moves the cursor in direction d. byGroup moves by character
// group for Left and Right. With extend the selection grows or shrinks
// between its anchor and the new cursor; without it the selection is
// cleared. Movement is allowed on read-only buffers.
func (c *Controller) MoveCursor(d Direction, extend, byGroup bool) {
	cur := c.buf.Cursor()

	var target int
	switch d {
	case Left:
		if byGroup {
			target = group.PreviousStart(c.buf.Runes(), cur, c.classify)
		} else {
			target = cur - 1
		}
	case Right:
		if byGroup {
			target = group.NextStart(c.buf.Runes(), cur, c.classify)
		} else {
			target = cur + 1
		}
	case Home:
		target = 0
	case End:
		target = c.buf.Len()
	default:
		return
	}
	target = clamp(target, 0, c.buf.Len())

	if extend {
		c.extendSelection(c.selectionAnchor(), target)
		return
	}
	c.buf.ClearSelection()
	c.buf.SetCursor(target)
}

// selectionAnchor returns the selection edge opposite the cursor, or the
// cursor itself when nothing is selected.
func (c *Controller) selectionAnchor() int {
	cur := c.buf.Cursor()
	sel, ok := c.buf.Selection()
	if !ok {
		return cur
	}
	if cur == sel.Start {
		return sel.End
	}
	return sel.Start
}

func (c *Controller) extendSelection(anchor, target int) {
	c.buf.SetSelection(anchor, target)
	c.buf.SetCursor(target)
	if sel, _ := c.buf.Selection(); sel.IsEmpty() {
		c.buf.ClearSelection()
	}
}

// SetSelection selects between a and b in either order, clamped to the
// content.
func (c *Controller) SetSelection(a, b int) {
	c.buf.SetSelection(a, b)
}

// SelectAll selects the whole content and moves the cursor to the end.
func (c *Controller) SelectAll() {
	n := c.buf.Len()
	c.buf.SetCursor(n)
	if n == 0 {
		c.buf.ClearSelection()
		return
	}
	c.buf.SetSelection(0, n)
}

// SelectGroupAt selects the character group around index i and moves the
// cursor to its end.
func (c *Controller) SelectGroupAt(i int) {
	start, end := group.At(c.buf.Runes(), i, c.classify)
	c.buf.SetCursor(end)
	if start == end {
		c.buf.ClearSelection()
		return
	}
	c.buf.SetSelection(start, end)
}

// CommitNumericClamp rewrites the content of a numeric field as the decimal
// value it represents, clamped to [0, MaxNumericValue] when a maximum is
// set, and moves the cursor to the end. Empty or unparsable content counts
// as 0; values too large for an int saturate. It reports whether the content
// changed. Non-numeric and read-only buffers are left alone.
func (c *Controller) CommitNumericClamp() bool {
	cons := c.buf.Constraints()
	if !cons.NumericOnly || cons.ReadOnly {
		return false
	}

	old := c.buf.Text()
	v := parseNumeric(old)
	if cons.MaxNumericValue > 0 {
		v = clamp(v, 0, cons.MaxNumericValue)
	}

	text := strconv.Itoa(v)
	c.buf.SetText(text)
	c.buf.ClearSelection()
	c.buf.SetCursor(c.buf.Len())

	if text == old {
		return false
	}
	c.log.Debug("committed %q as %q", old, text)
	c.emit(Changed)
	return true
}

// FocusLost ends any drag and commits numeric fields.
func (c *Controller) FocusLost() {
	c.mode = Idle
	c.CommitNumericClamp()
}

func parseNumeric(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Atoi saturates out-of-range values.
			return v
		}
		return 0
	}
	return v
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
