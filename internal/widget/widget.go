// Package widget provides the text-entry widgets driven by the input
// normalizers: TextField, Label and the Form that owns them.
//
// The set of widget kinds is closed. Code that needs editing behavior asks
// for the TextEditable capability instead of switching on concrete types.
package widget

import (
	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/controller"
)

// Kind identifies a concrete widget type.
type Kind uint8

const (
	// KindLabel is a static text widget.
	KindLabel Kind = iota + 1
	// KindTextField is a single-line editable field.
	KindTextField
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLabel:
		return "label"
	case KindTextField:
		return "textfield"
	default:
		return "unknown"
	}
}

// Rect is a widget's screen area in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Widget is implemented by every widget kind.
type Widget interface {
	ID() string
	Kind() Kind
	Bounds() Rect
	SetBounds(r Rect)
}

// TextEditable is the capability of widgets that own an editable buffer.
type TextEditable interface {
	Widget

	// Controller returns the editing controller.
	Controller() *controller.Controller

	// IndexAt maps a screen column to a buffer index.
	IndexAt(x int) int

	// Focus and Blur move keyboard focus. Blur commits pending numeric
	// input.
	Focus()
	Blur()
	Focused() bool

	// UpdateViewport scrolls the field so the cursor stays visible.
	UpdateViewport()

	// Visible returns the range of characters currently drawn.
	Visible() buffer.Range

	// CaretColumn returns the screen column of the cursor, or -1.
	CaretColumn() int
}

// AsTextEditable returns w's editing capability, if it has one.
func AsTextEditable(w Widget) (TextEditable, bool) {
	te, ok := w.(TextEditable)
	return te, ok
}
