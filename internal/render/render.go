// Package render draws a widget.Form onto a terminal backend.
package render

import (
	"github.com/dshills/fieldkit/internal/render/backend"
	"github.com/dshills/fieldkit/internal/widget"
)

// Theme holds the styles used to draw a form.
type Theme struct {
	Label        backend.Style
	Field        backend.Style
	FocusedField backend.Style
	ReadOnly     backend.Style
	Selection    backend.Style
	Status       backend.Style
}

// DefaultTheme returns a theme that works on 8-color terminals.
func DefaultTheme() Theme {
	field := backend.DefaultStyle().WithBackground(backend.ColorBlue).WithForeground(backend.ColorWhite)
	return Theme{
		Label:        backend.DefaultStyle().Bold(),
		Field:        field,
		FocusedField: field.Underline(),
		ReadOnly:     backend.DefaultStyle().WithForeground(backend.ColorGray).Underline(),
		Selection:    field.Reverse(),
		Status:       backend.DefaultStyle().Dim(),
	}
}

// Renderer draws forms.
type Renderer struct {
	backend backend.Backend
	theme   Theme
}

// New creates a renderer for b.
func New(b backend.Backend, theme Theme) *Renderer {
	return &Renderer{backend: b, theme: theme}
}

// Draw redraws the whole screen: every widget of f, and status on the
// bottom row. The terminal cursor is placed at the caret of the focused
// field.
func (r *Renderer) Draw(f *widget.Form, status string) {
	r.backend.Clear()
	r.backend.HideCursor()

	for _, w := range f.Widgets() {
		switch w.Kind() {
		case widget.KindLabel:
			if l, ok := w.(*widget.Label); ok {
				r.drawLabel(l)
			}
		case widget.KindTextField:
			if te, ok := widget.AsTextEditable(w); ok {
				r.drawField(te)
			}
		}
	}

	if status != "" {
		_, h := r.backend.Size()
		r.drawText(0, h-1, status, r.theme.Status, -1)
	}
	r.backend.Show()
}

func (r *Renderer) drawLabel(l *widget.Label) {
	b := l.Bounds()
	r.drawText(b.X, b.Y, l.Text(), r.theme.Label, b.Width)
}

func (r *Renderer) drawField(fld widget.TextEditable) {
	b := fld.Bounds()
	buf := fld.Controller().Buffer()

	style := r.theme.Field
	switch {
	case buf.ReadOnly():
		style = r.theme.ReadOnly
	case fld.Focused():
		style = r.theme.FocusedField
	}
	r.backend.Fill(backend.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: 1}, backend.NewStyledCell(' ', style))

	sel, hasSel := buf.Selection()
	vis := fld.Visible()
	x := b.X
	for i := vis.Start; i < vis.End; i++ {
		cellStyle := style
		if hasSel && sel.Contains(i) {
			cellStyle = r.theme.Selection
		}
		cell := backend.NewStyledCell(buf.At(i), cellStyle)
		if x+cell.Width > b.X+b.Width {
			break
		}
		r.backend.SetCell(x, b.Y, cell)
		x += cell.Width
	}

	if fld.Focused() {
		if col := fld.CaretColumn(); col >= 0 {
			r.backend.ShowCursor(col, b.Y)
		}
	}
}

// drawText writes text starting at (x, y), clipped to width cells when
// width is non-negative.
func (r *Renderer) drawText(x, y int, text string, style backend.Style, width int) {
	end := -1
	if width >= 0 {
		end = x + width
	}
	for _, ch := range text {
		cell := backend.NewStyledCell(ch, style)
		if end >= 0 && x+cell.Width > end {
			return
		}
		r.backend.SetCell(x, y, cell)
		x += cell.Width
	}
}
