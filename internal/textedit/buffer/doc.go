// Package buffer provides the single-line text buffer behind a text field.
//
// A Buffer owns:
//
//   - the content, a flat sequence of runes in display order
//   - the cursor index, always within [0, Len()]
//   - an optional selection, always stored normalized (Start <= End)
//   - the validity constraints (maximum length, numeric-only, maximum
//     numeric value, read-only)
//   - the viewport start, the first character considered visible
//
// Every index written through the Buffer API is clamped, so callers never see
// a buffer that violates these invariants. The Buffer itself does not decide
// what a keystroke means; that is the controller's job.
//
// Buffer is not safe for concurrent use. Each widget owns exactly one.
package buffer
