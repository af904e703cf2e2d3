package widget

import "github.com/google/uuid"

// Label is static text.
type Label struct {
	id     string
	text   string
	bounds Rect
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	return &Label{id: uuid.NewString(), text: text}
}

// ID returns the label's unique identifier.
func (l *Label) ID() string { return l.id }

// Kind returns KindLabel.
func (l *Label) Kind() Kind { return KindLabel }

// Bounds returns the label's screen area.
func (l *Label) Bounds() Rect { return l.bounds }

// SetBounds moves or resizes the label.
func (l *Label) SetBounds(r Rect) { l.bounds = r }

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	l.text = text
}
