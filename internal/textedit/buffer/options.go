package buffer

// Constraints are the validity rules fixed when a widget is constructed.
type Constraints struct {
	// MaxLength is the maximum number of characters; 0 means unbounded.
	MaxLength int

	// NumericOnly restricts content to the digits '0' through '9'.
	NumericOnly bool

	// MaxNumericValue is the inclusive upper bound applied when a numeric
	// field is committed; 0 means unbounded.
	MaxNumericValue int

	// ReadOnly rejects every content mutation. Cursor and selection
	// movement remain allowed.
	ReadOnly bool
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithConstraints sets the validity constraints.
func WithConstraints(c Constraints) Option {
	return func(b *Buffer) {
		b.constraints = c
	}
}

// WithMaxLength sets the maximum length.
func WithMaxLength(n int) Option {
	return func(b *Buffer) {
		b.constraints.MaxLength = n
	}
}

// WithNumericOnly restricts content to digits, with an optional upper
// bound applied on commit.
func WithNumericOnly(maxValue int) Option {
	return func(b *Buffer) {
		b.constraints.NumericOnly = true
		b.constraints.MaxNumericValue = maxValue
	}
}

// WithReadOnly marks the buffer read-only.
func WithReadOnly() Option {
	return func(b *Buffer) {
		b.constraints.ReadOnly = true
	}
}

// WithText sets the initial content, subject to MaxLength.
// Options are applied in order, so place it after the constraint options.
func WithText(text string) Option {
	return func(b *Buffer) {
		b.SetText(text)
	}
}
