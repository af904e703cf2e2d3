// Package viewport keeps the cursor of a single-line field inside a
// fixed-width display window.
//
// Text width comes from a Measurer supplied by the host (font metrics for a
// graphical toolkit, cell widths for a terminal). The Scroller never renders
// anything; it only decides which character is the first one visible and
// maps pointer offsets back to character indices.
package viewport
