package widget

import (
	"github.com/google/uuid"

	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/controller"
	"github.com/dshills/fieldkit/internal/textedit/viewport"
)

// TextField is a single-line editable field. It exclusively owns its
// buffer and controller.
type TextField struct {
	id      string
	name    string
	bounds  Rect
	ctrl    *controller.Controller
	scroll  *viewport.Scroller
	measure viewport.Measurer
	focused bool
}

// FieldOption configures a TextField.
type FieldOption func(*TextField)

// WithMeasurer sets the text measurement used for scrolling and hit
// testing. The default measures terminal cells.
func WithMeasurer(m viewport.Measurer) FieldOption {
	return func(f *TextField) {
		if m != nil {
			f.measure = m
		}
	}
}

// WithControllerOptions passes options to the field's controller.
func WithControllerOptions(opts ...controller.Option) FieldOption {
	return func(f *TextField) {
		f.ctrl = controller.New(f.ctrl.Buffer(), opts...)
	}
}

// NewTextField creates a field named name editing buf, width cells wide.
func NewTextField(name string, width int, buf *buffer.Buffer, opts ...FieldOption) *TextField {
	f := &TextField{
		id:      uuid.NewString(),
		name:    name,
		ctrl:    controller.New(buf),
		scroll:  viewport.NewScroller(0),
		measure: viewport.CellMeasurer{},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.SetBounds(Rect{Width: width, Height: 1})
	return f
}

// ID returns the field's unique identifier.
func (f *TextField) ID() string { return f.id }

// Kind returns KindTextField.
func (f *TextField) Kind() Kind { return KindTextField }

// Bounds returns the field's screen area.
func (f *TextField) Bounds() Rect { return f.bounds }

// SetBounds moves or resizes the field. One column is kept free for the
// caret after the last character.
func (f *TextField) SetBounds(r Rect) {
	f.bounds = r
	f.scroll.Width = max(r.Width-1, 1)
	f.UpdateViewport()
}

// Name returns the field name.
func (f *TextField) Name() string {
	return f.name
}

// Controller returns the editing controller.
func (f *TextField) Controller() *controller.Controller {
	return f.ctrl
}

// Buffer returns the field's buffer.
func (f *TextField) Buffer() *buffer.Buffer {
	return f.ctrl.Buffer()
}

// Text returns the field content.
func (f *TextField) Text() string {
	return f.ctrl.Buffer().Text()
}

// Focus gives the field keyboard focus.
func (f *TextField) Focus() {
	f.focused = true
}

// Blur removes keyboard focus and commits numeric input.
func (f *TextField) Blur() {
	if !f.focused {
		return
	}
	f.focused = false
	f.ctrl.FocusLost()
	f.UpdateViewport()
}

// Focused reports whether the field has keyboard focus.
func (f *TextField) Focused() bool {
	return f.focused
}

// IndexAt maps screen column x to the nearest character boundary of the
// visible text.
func (f *TextField) IndexAt(x int) int {
	buf := f.ctrl.Buffer()
	return f.scroll.IndexAt(x-f.bounds.X, buf.ViewportStart(), buf.Runes(), f.measure)
}

// UpdateViewport recomputes the first visible character from the cursor.
func (f *TextField) UpdateViewport() {
	buf := f.ctrl.Buffer()
	buf.SetViewportStart(f.scroll.Recompute(buf.ViewportStart(), buf.Cursor(), buf.Runes(), f.measure))
}

// Visible returns the range of characters drawn in the field.
func (f *TextField) Visible() buffer.Range {
	buf := f.ctrl.Buffer()
	start := buf.ViewportStart()
	return buffer.Range{Start: start, End: f.scroll.VisibleEnd(start, buf.Runes(), f.measure)}
}

// CaretColumn returns the screen column of the cursor, or -1 when it is
// scrolled out of view.
func (f *TextField) CaretColumn() int {
	buf := f.ctrl.Buffer()
	off := f.scroll.OffsetOf(buf.Cursor(), buf.ViewportStart(), buf.Runes(), f.measure)
	if off < 0 || off >= f.bounds.Width {
		return -1
	}
	return f.bounds.X + off
}

// Measurer returns the field's text measurement.
func (f *TextField) Measurer() viewport.Measurer {
	return f.measure
}
