package widget

import (
	"time"

	"github.com/rivo/uniseg"

	"github.com/dshills/fieldkit/internal/input"
	"github.com/dshills/fieldkit/internal/input/key"
	"github.com/dshills/fieldkit/internal/input/mouse"
	"github.com/dshills/fieldkit/internal/input/sample"
	"github.com/dshills/fieldkit/internal/logging"
	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/controller"
)

const (
	// DefaultDoubleClickTime is the maximum interval between presses of a
	// multi-click.
	DefaultDoubleClickTime = 400 * time.Millisecond

	// doubleClickDistance is the maximum pointer travel, in cells, between
	// presses of a multi-click.
	doubleClickDistance = 1

	// labelGap separates the label column from the fields.
	labelGap = 2
)

// SignalHandler receives signals raised by any field of a form.
type SignalHandler func(field *TextField, sig controller.Signal)

// Form lays out labelled fields one per row and runs the per-tick input
// pipeline: normalize the snapshot, dispatch pointer then key events to the
// fields, then scroll every field to its cursor. One key normalizer and one
// button normalizer are shared by all fields.
//
// Form is not safe for concurrent use.
type Form struct {
	labels []*Label
	fields []*TextField
	focus  int
	origin Rect

	keys    *key.Normalizer
	buttons *mouse.Normalizer
	clicks  *mouse.ClickCounter
	clock   time.Time

	drag      TextEditable
	lastClick TextEditable
	quit      bool
	handlers  []SignalHandler

	log *logging.Logger
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithKeyConfig sets the key repeat timing.
func WithKeyConfig(cfg key.Config) FormOption {
	return func(f *Form) {
		f.keys.SetConfig(cfg)
	}
}

// WithDoubleClickTime sets the multi-click interval.
func WithDoubleClickTime(d time.Duration) FormOption {
	return func(f *Form) {
		f.clicks.SetMaxTime(d)
	}
}

// WithOrigin sets the top-left cell of the form.
func WithOrigin(x, y int) FormOption {
	return func(f *Form) {
		f.origin = Rect{X: x, Y: y}
	}
}

// WithFormLogger sets the form logger.
func WithFormLogger(l *logging.Logger) FormOption {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// NewForm creates an empty form.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		focus:   -1,
		keys:    key.NewNormalizer(key.DefaultConfig()),
		buttons: mouse.NewNormalizer(),
		clicks:  mouse.NewClickCounter(DefaultDoubleClickTime, doubleClickDistance),
		// The click counter treats the zero time as "no previous click".
		clock: time.Unix(0, 0),
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AddField appends a labelled field on a new row and lays out the form.
// The first field added receives focus.
func (f *Form) AddField(label string, field *TextField) {
	f.labels = append(f.labels, NewLabel(label))
	f.fields = append(f.fields, field)
	field.Controller().Subscribe(func(sig controller.Signal, _ *buffer.Buffer) {
		f.notify(field, sig)
	})
	f.Layout()
	if f.focus < 0 {
		f.FocusIndex(0)
	}
}

// Layout positions labels in the first column and fields after the widest
// label.
func (f *Form) Layout() {
	col := 0
	for _, l := range f.labels {
		col = max(col, uniseg.StringWidth(l.Text()))
	}
	if col > 0 {
		col += labelGap
	}
	for i, l := range f.labels {
		y := f.origin.Y + i
		l.SetBounds(Rect{X: f.origin.X, Y: y, Width: col, Height: 1})
		fb := f.fields[i].Bounds()
		f.fields[i].SetBounds(Rect{X: f.origin.X + col, Y: y, Width: fb.Width, Height: 1})
	}
}

// Fields returns the fields in focus order.
func (f *Form) Fields() []*TextField {
	return f.fields
}

// Labels returns the labels, one per field.
func (f *Form) Labels() []*Label {
	return f.labels
}

// Widgets returns every widget of the form.
func (f *Form) Widgets() []Widget {
	ws := make([]Widget, 0, len(f.labels)+len(f.fields))
	for i := range f.fields {
		ws = append(ws, f.labels[i], f.fields[i])
	}
	return ws
}

// Field returns the field with the given name.
func (f *Form) Field(name string) (*TextField, bool) {
	for _, fld := range f.fields {
		if fld.Name() == name {
			return fld, true
		}
	}
	return nil, false
}

// EditableAt returns the editable widget under the cell (x, y).
func (f *Form) EditableAt(x, y int) (TextEditable, bool) {
	for _, w := range f.Widgets() {
		if !w.Bounds().Contains(x, y) {
			continue
		}
		if te, ok := AsTextEditable(w); ok {
			return te, true
		}
	}
	return nil, false
}

// Focused returns the focused field, or nil.
func (f *Form) Focused() *TextField {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}
	return f.fields[f.focus]
}

// FocusIndex moves focus to the i-th field. The previously focused field
// loses focus first, which commits its numeric input.
func (f *Form) FocusIndex(i int) {
	if i < 0 || i >= len(f.fields) || i == f.focus {
		return
	}
	if cur := f.Focused(); cur != nil {
		f.endDrag()
		cur.Blur()
	}
	f.focus = i
	f.fields[i].Focus()
	f.log.Info("focus %s", f.fields[i].Name())
}

// FocusNext moves focus to the next field, or the previous one when back
// is set, wrapping around.
func (f *Form) FocusNext(back bool) {
	n := len(f.fields)
	if n == 0 {
		return
	}
	step := 1
	if back {
		step = n - 1
	}
	f.FocusIndex((max(f.focus, 0) + step) % n)
}

func (f *Form) focusField(te TextEditable) {
	for i, candidate := range f.fields {
		if candidate.ID() == te.ID() {
			f.FocusIndex(i)
			return
		}
	}
}

// OnSignal registers a handler for signals raised by any field.
func (f *Form) OnSignal(h SignalHandler) {
	f.handlers = append(f.handlers, h)
}

func (f *Form) notify(field *TextField, sig controller.Signal) {
	f.log.Debug("%s: %s", field.Name(), sig)
	for _, h := range f.handlers {
		h(field, sig)
	}
}

// SetKeyConfig changes the key repeat timing. Keys already held keep their
// progress.
func (f *Form) SetKeyConfig(cfg key.Config) {
	f.keys.SetConfig(cfg)
}

// KeyConfig returns the key repeat timing.
func (f *Form) KeyConfig() key.Config {
	return f.keys.Config()
}

// SetDoubleClickTime changes the multi-click interval.
func (f *Form) SetDoubleClickTime(d time.Duration) {
	f.clicks.SetMaxTime(d)
}

// QuitRequested reports whether Escape was pushed.
func (f *Form) QuitRequested() bool {
	return f.quit
}

// Tick runs one pass of the input pipeline for a raw snapshot taken
// elapsed after the previous one.
func (f *Form) Tick(snap sample.Snapshot, elapsed time.Duration) {
	if elapsed > 0 {
		f.clock = f.clock.Add(elapsed)
	}

	keyEvents := f.keys.Step(&snap.Keys, snap.Modifiers, elapsed)
	buttonEvents := f.buttons.Step(&snap.Buttons, snap.Pointer, snap.Modifiers)

	for _, ev := range buttonEvents {
		f.dispatchButton(ev)
	}
	for _, ev := range keyEvents {
		f.dispatchKey(ev)
	}
	for _, fld := range f.fields {
		fld.UpdateViewport()
	}
}

func (f *Form) dispatchButton(ev mouse.Event) {
	if ev.Button != mouse.ButtonLeft {
		return
	}

	switch ev.Transition {
	case input.Pushed:
		fld, ok := f.EditableAt(ev.Position.X, ev.Position.Y)
		if !ok {
			f.clicks.Reset()
			f.lastClick = nil
			return
		}
		// A multi-click never spans two fields.
		if f.lastClick == nil || f.lastClick.ID() != fld.ID() {
			f.clicks.Reset()
		}
		f.lastClick = fld
		f.focusField(fld)

		ctrl := fld.Controller()
		idx := fld.IndexAt(ev.Position.X)
		count := f.clicks.Record(ev.Position, f.clock)
		if count == 1 && ev.Modifiers.HasShift() {
			ctrl.ExtendTo(idx)
			return
		}

		ctrl.OnPointerDown(idx)
		switch count {
		case 1:
			f.drag = fld
		case 2:
			ctrl.OnPointerUp()
			ctrl.SelectGroupAt(idx)
		case 3:
			ctrl.OnPointerUp()
			ctrl.SelectAll()
		}

	case input.Repeat:
		if f.drag != nil {
			f.drag.Controller().OnPointerMove(f.dragIndex(f.drag, ev.Position.X))
		}

	case input.Released:
		f.endDrag()
	}
}

// dragIndex maps a drag position to an index, stepping one character past
// the visible text when the pointer is outside the field so the selection
// scrolls.
func (f *Form) dragIndex(fld TextEditable, x int) int {
	b := fld.Bounds()
	vis := fld.Visible()
	switch {
	case x < b.X:
		return vis.Start - 1
	case x >= b.X+b.Width:
		return vis.End + 1
	default:
		return fld.IndexAt(x)
	}
}

func (f *Form) endDrag() {
	if f.drag != nil {
		f.drag.Controller().OnPointerUp()
		f.drag = nil
	}
}

func (f *Form) dispatchKey(ev key.Event) {
	if ev.Transition.IsActive() {
		switch ev.Key() {
		case key.KeyTab:
			f.FocusNext(ev.Modifiers.HasShift())
			return
		case key.KeyEscape:
			if ev.Transition == input.Pushed {
				f.quit = true
			}
			return
		}
	}

	fld := f.Focused()
	if fld == nil {
		return
	}
	if !fld.Controller().HandleKey(ev) && ev.Transition == input.Pushed {
		f.log.Debug("%s: unhandled %s", fld.Name(), ev)
	}
}
