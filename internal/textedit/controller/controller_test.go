package controller

import (
	"strings"
	"testing"

	"github.com/dshills/fieldkit/internal/textedit/buffer"
	"github.com/dshills/fieldkit/internal/textedit/group"
)

// recorder collects emitted signals.
type recorder struct {
	signals []Signal
}

func (r *recorder) listen(sig Signal, _ *buffer.Buffer) {
	r.signals = append(r.signals, sig)
}

func (r *recorder) count(sig Signal) int {
	n := 0
	for _, s := range r.signals {
		if s == sig {
			n++
		}
	}
	return n
}

func newController(text string, opts ...buffer.Option) (*Controller, *recorder) {
	opts = append(opts, buffer.WithText(text))
	c := New(buffer.New(opts...))
	rec := &recorder{}
	c.Subscribe(rec.listen)
	return c, rec
}

func assertState(t *testing.T, c *Controller, text string, cursor int) {
	t.Helper()
	if got := c.Buffer().Text(); got != text {
		t.Errorf("Text() = %q, want %q", got, text)
	}
	if got := c.Buffer().Cursor(); got != cursor {
		t.Errorf("Cursor() = %d, want %d", got, cursor)
	}
}

func TestNumericFieldWithMaxLength(t *testing.T) {
	c, rec := newController("", buffer.WithMaxLength(5), buffer.WithNumericOnly(0))

	for _, r := range "123a4" {
		c.InsertChar(r)
	}

	assertState(t, c, "1234", 4)
	if got := rec.count(Changed); got != 4 {
		t.Errorf("Changed emitted %d times, want 4", got)
	}
}

func TestCommitNumericClampToMaximum(t *testing.T) {
	c, rec := newController("999", buffer.WithNumericOnly(255))
	c.Buffer().SetCursor(1)

	if !c.CommitNumericClamp() {
		t.Error("CommitNumericClamp() = false, want true")
	}
	assertState(t, c, "255", 3)
	if got := rec.count(Changed); got != 1 {
		t.Errorf("Changed emitted %d times, want 1", got)
	}
}

func TestCommitNumericClamp(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		max         int
		want        string
		wantChanged bool
	}{
		{"empty becomes zero", "", 0, "0", true},
		{"leading zeros", "007", 0, "7", true},
		{"within bounds", "42", 100, "42", false},
		{"unbounded", "123456", 0, "123456", false},
		{"overflow saturates to max", "99999999999999999999999", 500, "500", true},
		{"unparsable falls back to zero", "-x", 10, "0", true},
		{"negative clamped", "-5", 10, "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newController(tt.text, buffer.WithNumericOnly(tt.max))
			changed := c.CommitNumericClamp()
			if changed != tt.wantChanged {
				t.Errorf("CommitNumericClamp() = %v, want %v", changed, tt.wantChanged)
			}
			assertState(t, c, tt.want, len(tt.want))
		})
	}
}

func TestCommitNumericClampIgnoresTextFields(t *testing.T) {
	c, rec := newController("999")
	if c.CommitNumericClamp() {
		t.Error("CommitNumericClamp() on text field = true")
	}
	assertState(t, c, "999", 0)
	if len(rec.signals) != 0 {
		t.Errorf("signals = %v, want none", rec.signals)
	}
}

func TestMoveByGroupFromStart(t *testing.T) {
	c, _ := newController("hello world")
	c.MoveCursor(Right, false, true)
	if got := c.Buffer().Cursor(); got != 6 {
		t.Errorf("Cursor() = %d, want 6", got)
	}
	c.MoveCursor(Right, false, true)
	if got := c.Buffer().Cursor(); got != 11 {
		t.Errorf("Cursor() = %d, want 11", got)
	}
	c.MoveCursor(Left, false, true)
	if got := c.Buffer().Cursor(); got != 6 {
		t.Errorf("Cursor() = %d, want 6", got)
	}
}

func TestDragSelectThenType(t *testing.T) {
	c, rec := newController("abcdef")

	c.OnPointerDown(1)
	if c.Mode() != Selecting {
		t.Fatalf("Mode() = %s, want selecting", c.Mode())
	}
	c.OnPointerMove(3)
	c.OnPointerMove(4)
	c.OnPointerUp()

	sel, ok := c.Buffer().Selection()
	if !ok || sel != (buffer.Range{Start: 1, End: 4}) {
		t.Fatalf("Selection() = %v, %v; want [1,4), true", sel, ok)
	}
	if c.Mode() != Idle {
		t.Errorf("Mode() = %s, want idle", c.Mode())
	}

	c.InsertChar('X')
	assertState(t, c, "aXef", 2)
	if c.Buffer().HasSelection() {
		t.Error("selection survived insert")
	}
	if rec.count(Clicked) != 1 || rec.count(Changed) != 1 {
		t.Errorf("signals = %v, want one clicked and one changed", rec.signals)
	}
}

func TestDragBackwardsNormalizes(t *testing.T) {
	c, _ := newController("abcdef")
	c.OnPointerDown(5)
	c.OnPointerMove(2)
	c.OnPointerUp()

	sel, _ := c.Buffer().Selection()
	if sel != (buffer.Range{Start: 2, End: 5}) {
		t.Errorf("Selection() = %v, want [2,5)", sel)
	}
	if got := c.Buffer().Cursor(); got != 2 {
		t.Errorf("Cursor() = %d, want 2", got)
	}
}

func TestDegenerateDragIsClick(t *testing.T) {
	c, _ := newController("abcdef")
	c.OnPointerDown(3)
	c.OnPointerMove(5)
	c.OnPointerMove(3)
	c.OnPointerUp()

	if c.Buffer().HasSelection() {
		t.Error("degenerate drag left a selection")
	}
	if got := c.Buffer().Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}
}

func TestPointerClampsIndices(t *testing.T) {
	c, _ := newController("abc")
	c.OnPointerDown(-5)
	c.OnPointerMove(40)
	c.OnPointerUp()

	sel, _ := c.Buffer().Selection()
	if sel != (buffer.Range{Start: 0, End: 3}) {
		t.Errorf("Selection() = %v, want [0,3)", sel)
	}
}

func TestPointerMoveIgnoredWhenIdle(t *testing.T) {
	c, _ := newController("abc")
	c.OnPointerMove(2)
	c.OnPointerUp()
	if c.Buffer().HasSelection() || c.Buffer().Cursor() != 0 {
		t.Error("move without press changed the buffer")
	}
}

func TestPointerDownWhileSelectingIgnored(t *testing.T) {
	c, _ := newController("abcdef")
	c.OnPointerDown(1)
	c.OnPointerDown(4)
	c.OnPointerMove(5)
	sel, _ := c.Buffer().Selection()
	if sel.Start != 1 {
		t.Errorf("second press moved the anchor: %v", sel)
	}
}

func TestReadOnlyRejectsMutations(t *testing.T) {
	c, rec := newController("hello", buffer.WithReadOnly(), buffer.WithNumericOnly(0))
	c.Buffer().SetCursor(2)
	c.Buffer().SetSelection(1, 3)

	if c.InsertChar('1') || c.DeleteBackward() || c.DeleteForward() || c.DeleteSelection() ||
		c.DeleteGroupBackward() || c.DeleteGroupForward() || c.CommitNumericClamp() {
		t.Error("read-only buffer accepted a mutation")
	}
	assertState(t, c, "hello", 2)

	c.OnPointerDown(4)
	if c.Mode() != Idle {
		t.Error("read-only field entered selecting mode")
	}
	if rec.count(Clicked) != 1 || rec.count(Changed) != 0 {
		t.Errorf("signals = %v, want only clicked", rec.signals)
	}

	c.MoveCursor(End, true, false)
	sel, _ := c.Buffer().Selection()
	if c.Buffer().Cursor() != 5 || sel != (buffer.Range{Start: 1, End: 5}) {
		t.Errorf("read-only movement: cursor %d selection %v", c.Buffer().Cursor(), sel)
	}
}

func TestDeleteBackwardForward(t *testing.T) {
	c, rec := newController("abc")

	if c.DeleteBackward() {
		t.Error("DeleteBackward at start succeeded")
	}
	if !c.DeleteForward() {
		t.Error("DeleteForward at start failed")
	}
	assertState(t, c, "bc", 0)

	c.MoveCursor(End, false, false)
	if c.DeleteForward() {
		t.Error("DeleteForward at end succeeded")
	}
	if !c.DeleteBackward() {
		t.Error("DeleteBackward at end failed")
	}
	assertState(t, c, "b", 1)
	if rec.count(Changed) != 2 {
		t.Errorf("Changed emitted %d times, want 2", rec.count(Changed))
	}
}

func TestDeleteWithSelection(t *testing.T) {
	for _, forward := range []bool{false, true} {
		c, _ := newController("abcdef")
		c.SetSelection(4, 2)
		c.Buffer().SetCursor(4)
		if forward {
			c.DeleteForward()
		} else {
			c.DeleteBackward()
		}
		assertState(t, c, "abef", 2)
	}
}

func TestDeleteSelectionWithoutSelection(t *testing.T) {
	c, rec := newController("abc")
	if c.DeleteSelection() {
		t.Error("DeleteSelection without selection succeeded")
	}
	if len(rec.signals) != 0 {
		t.Errorf("signals = %v, want none", rec.signals)
	}
}

func TestDeleteGroups(t *testing.T) {
	c, _ := newController("hello big world")
	c.MoveCursor(End, false, false)

	c.DeleteGroupBackward()
	assertState(t, c, "hello big ", 10)

	c.MoveCursor(Home, false, false)
	c.DeleteGroupForward()
	assertState(t, c, "big ", 0)

	c.MoveCursor(Home, false, false)
	if c.DeleteGroupBackward() {
		t.Error("DeleteGroupBackward at start succeeded")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	c, _ := newController("ab")
	c.MoveCursor(Left, false, false)
	if c.Buffer().Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", c.Buffer().Cursor())
	}
	c.MoveCursor(Right, false, false)
	c.MoveCursor(Right, false, false)
	c.MoveCursor(Right, false, false)
	if c.Buffer().Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", c.Buffer().Cursor())
	}
}

func TestExtendSelection(t *testing.T) {
	c, _ := newController("abcdef")
	c.Buffer().SetCursor(2)

	c.MoveCursor(Right, true, false)
	c.MoveCursor(Right, true, false)
	sel, _ := c.Buffer().Selection()
	if sel != (buffer.Range{Start: 2, End: 4}) {
		t.Fatalf("Selection() = %v, want [2,4)", sel)
	}

	// Moving back past the anchor flips the selection around it.
	c.MoveCursor(Left, true, false)
	c.MoveCursor(Left, true, false)
	if c.Buffer().HasSelection() {
		t.Fatalf("selection should collapse when cursor returns to anchor")
	}
	c.MoveCursor(Left, true, false)
	sel, _ = c.Buffer().Selection()
	if sel != (buffer.Range{Start: 1, End: 2}) {
		t.Errorf("Selection() = %v, want [1,2)", sel)
	}

	c.MoveCursor(End, true, false)
	sel, _ = c.Buffer().Selection()
	if sel != (buffer.Range{Start: 2, End: 6}) {
		t.Errorf("Selection() after Shift+End = %v, want [2,6)", sel)
	}

	c.MoveCursor(Home, false, false)
	if c.Buffer().HasSelection() || c.Buffer().Cursor() != 0 {
		t.Error("plain Home should clear the selection")
	}
}

func TestExtendSelectionByGroup(t *testing.T) {
	c, _ := newController("one two three")
	c.MoveCursor(Right, true, true)
	c.MoveCursor(Right, true, true)
	if got := c.Buffer().SelectedText(); got != "one two " {
		t.Errorf("SelectedText() = %q, want %q", got, "one two ")
	}
}

func TestExtendTo(t *testing.T) {
	c, _ := newController("abcdef")
	c.Buffer().SetCursor(1)
	c.ExtendTo(5)
	sel, _ := c.Buffer().Selection()
	if sel != (buffer.Range{Start: 1, End: 5}) || c.Buffer().Cursor() != 5 {
		t.Errorf("ExtendTo(5): selection %v cursor %d", sel, c.Buffer().Cursor())
	}
	c.ExtendTo(0)
	sel, _ = c.Buffer().Selection()
	if sel != (buffer.Range{Start: 0, End: 1}) {
		t.Errorf("ExtendTo(0): selection %v, want [0,1)", sel)
	}
}

func TestSelectAllAndGroup(t *testing.T) {
	c, _ := newController("alpha beta")
	c.SelectAll()
	if got := c.Buffer().SelectedText(); got != "alpha beta" {
		t.Errorf("SelectAll() selected %q", got)
	}

	c.SelectGroupAt(7)
	if got := c.Buffer().SelectedText(); got != "beta" {
		t.Errorf("SelectGroupAt(7) selected %q, want %q", got, "beta")
	}
	if c.Buffer().Cursor() != 10 {
		t.Errorf("Cursor() = %d, want 10", c.Buffer().Cursor())
	}

	empty, _ := newController("")
	empty.SelectAll()
	empty.SelectGroupAt(0)
	if empty.Buffer().HasSelection() {
		t.Error("empty buffer gained a selection")
	}
}

func TestPunctuationClassifier(t *testing.T) {
	c := New(buffer.New(buffer.WithText("foo.bar")), WithClassifier(group.ByPunctuation))
	c.MoveCursor(Right, false, true)
	if got := c.Buffer().Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}
}

func TestCharFilter(t *testing.T) {
	upperOnly := CharFilterFunc(func(r rune, _ string) bool {
		return r >= 'A' && r <= 'Z'
	})
	c := New(buffer.New(), WithFilter(upperOnly))

	c.InsertChar('a')
	c.InsertChar('B')
	if got := c.Buffer().Text(); got != "B" {
		t.Errorf("Text() = %q, want %q", got, "B")
	}

	c.SetFilter(nil)
	c.InsertChar('c')
	if got := c.Buffer().Text(); got != "Bc" {
		t.Errorf("Text() = %q, want %q", got, "Bc")
	}
}

func TestUnsubscribe(t *testing.T) {
	c := New(buffer.New())
	var a, b int
	unsubA := c.Subscribe(func(Signal, *buffer.Buffer) { a++ })
	c.Subscribe(func(Signal, *buffer.Buffer) { b++ })

	c.InsertChar('x')
	unsubA()
	c.InsertChar('y')

	if a != 1 || b != 2 {
		t.Errorf("listener calls = %d, %d; want 1, 2", a, b)
	}
}

func TestInsertBackspaceRoundTrip(t *testing.T) {
	contents := []string{"", "a", "hello world", "héllo", "12 34"}
	for _, content := range contents {
		n := len([]rune(content))
		for p := 0; p <= n; p++ {
			for _, x := range "xZ9 é" {
				c, _ := newController(content)
				c.Buffer().SetCursor(p)
				if !c.InsertChar(x) {
					t.Fatalf("InsertChar(%q) into %q at %d rejected", x, content, p)
				}
				c.DeleteBackward()
				if c.Buffer().Text() != content || c.Buffer().Cursor() != p {
					t.Fatalf("round trip %q at %d with %q: got %q cursor %d",
						content, p, x, c.Buffer().Text(), c.Buffer().Cursor())
				}
			}
		}
	}
}

func TestSelectionAlwaysOrdered(t *testing.T) {
	c, _ := newController("abcdefgh")
	pairs := [][2]int{{0, 8}, {8, 0}, {3, 3}, {7, 2}, {-1, 4}, {12, 5}}
	for _, p := range pairs {
		c.SetSelection(p[0], p[1])
		sel, _ := c.Buffer().Selection()
		if sel.Start > sel.End || sel.Start < 0 || sel.End > c.Buffer().Len() {
			t.Errorf("SetSelection(%d, %d) = %v", p[0], p[1], sel)
		}
	}

	for _, drag := range [][]int{{6, 1, 3}, {0, 8, 2, 7}, {4, 4}} {
		c.OnPointerDown(drag[0])
		for _, i := range drag[1:] {
			c.OnPointerMove(i)
			if sel, ok := c.Buffer().Selection(); ok && sel.Start > sel.End {
				t.Errorf("drag %v produced %v", drag, sel)
			}
		}
		c.OnPointerUp()
	}
}

func TestLengthBound(t *testing.T) {
	for _, limit := range []int{1, 3, 8} {
		c, _ := newController("", buffer.WithMaxLength(limit))
		for _, r := range strings.Repeat("abc ", 5) {
			c.InsertChar(r)
			if c.Buffer().Len() > limit {
				t.Fatalf("MaxLength %d exceeded: %q", limit, c.Buffer().Text())
			}
		}
		if c.Buffer().Len() != limit {
			t.Errorf("MaxLength %d: Len() = %d", limit, c.Buffer().Len())
		}
	}
}

func TestMaxLengthReplacesSelection(t *testing.T) {
	c, _ := newController("abc", buffer.WithMaxLength(3))
	c.SetSelection(0, 1)
	if !c.InsertChar('z') {
		t.Error("InsertChar over selection in full buffer rejected")
	}
	if got := c.Buffer().Text(); got != "zbc" {
		t.Errorf("Text() = %q, want %q", got, "zbc")
	}
}

func TestNumericFilterNeverChangesLength(t *testing.T) {
	c, rec := newController("12", buffer.WithNumericOnly(0))
	c.SetSelection(0, 2)
	for _, r := range "a -.,x٣" {
		before := c.Buffer().Len()
		c.InsertChar(r)
		if c.Buffer().Len() != before {
			t.Fatalf("inserting %q changed length", r)
		}
	}
	if len(rec.signals) != 0 {
		t.Errorf("signals = %v, want none", rec.signals)
	}
	if !c.Buffer().HasSelection() {
		t.Error("rejected character cleared the selection")
	}
}

func TestFocusLost(t *testing.T) {
	c, _ := newController("0300", buffer.WithNumericOnly(255))
	c.OnPointerDown(1)
	c.FocusLost()
	if c.Mode() != Idle {
		t.Errorf("Mode() = %s, want idle", c.Mode())
	}
	assertState(t, c, "255", 3)
}
