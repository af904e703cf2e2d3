package viewport

import "github.com/rivo/uniseg"

// Measurer reports the display width of a run of text.
type Measurer interface {
	Width(text string) int
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string) int

// Width calls f(text).
func (f MeasureFunc) Width(text string) int {
	return f(text)
}

// CellMeasurer measures text in terminal cells, counting wide (East Asian)
// characters as two cells and zero-width characters as none.
type CellMeasurer struct{}

// Width returns the number of terminal cells needed to display text.
func (CellMeasurer) Width(text string) int {
	return uniseg.StringWidth(text)
}

// Monospace measures every character as Advance units wide.
type Monospace struct {
	Advance int
}

// Width returns Advance times the number of characters.
func (m Monospace) Width(text string) int {
	n := 0
	for range text {
		n++
	}
	return n * m.Advance
}
