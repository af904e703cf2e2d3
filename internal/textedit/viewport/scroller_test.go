package viewport

import "testing"

func TestRecompute(t *testing.T) {
	mono := Monospace{Advance: 1}

	tests := []struct {
		name    string
		content string
		width   int
		start   int
		cursor  int
		want    int
	}{
		{"fits", "abc", 5, 0, 3, 0},
		{"scroll right to end", "abcdefghij", 5, 0, 10, 5},
		{"scroll left to cursor", "abcdefghij", 5, 5, 2, 2},
		{"cursor inside window", "abcdefghij", 5, 2, 7, 2},
		{"pull back after deletion", "abcdef", 5, 4, 6, 1},
		{"empty", "", 5, 3, 0, 0},
		{"start clamped", "abc", 5, 40, 1, 0},
		{"cursor clamped", "abcdefghij", 5, 0, 99, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(tt.width)
			got := s.Recompute(tt.start, tt.cursor, []rune(tt.content), mono)
			if got != tt.want {
				t.Errorf("Recompute(%d, %d) = %d, want %d", tt.start, tt.cursor, got, tt.want)
			}
		})
	}
}

func TestRecomputeInvariant(t *testing.T) {
	content := []rune("the quick brown fox jumps over the lazy dog")
	m := Monospace{Advance: 7}
	s := NewScroller(70)

	start := 0
	for cursor := 0; cursor <= len(content); cursor++ {
		start = s.Recompute(start, cursor, content, m)
		if start > cursor {
			t.Fatalf("cursor %d: start %d is right of the cursor", cursor, start)
		}
		if w := m.Width(string(content[start:cursor])); w > s.Width {
			t.Fatalf("cursor %d: span width %d exceeds %d", cursor, w, s.Width)
		}
	}
	for cursor := len(content); cursor >= 0; cursor-- {
		start = s.Recompute(start, cursor, content, m)
		if start > cursor {
			t.Fatalf("cursor %d: start %d is right of the cursor", cursor, start)
		}
		if w := m.Width(string(content[start:cursor])); w > s.Width {
			t.Fatalf("cursor %d: span width %d exceeds %d", cursor, w, s.Width)
		}
	}
}

func TestRecomputeWideCells(t *testing.T) {
	s := NewScroller(4)
	content := []rune("世界你好")
	if got := s.Recompute(0, 4, content, CellMeasurer{}); got != 2 {
		t.Errorf("Recompute() = %d, want 2", got)
	}
}

func TestIndexAt(t *testing.T) {
	content := []rune("abcdef")

	tests := []struct {
		name  string
		m     Measurer
		x     int
		start int
		want  int
	}{
		{"left of window", Monospace{Advance: 1}, -3, 0, 0},
		{"cell boundary", Monospace{Advance: 1}, 2, 0, 2},
		{"past text", Monospace{Advance: 1}, 10, 0, 6},
		{"scrolled", Monospace{Advance: 1}, 1, 3, 4},
		{"nearest left", Monospace{Advance: 10}, 14, 0, 1},
		{"nearest right", Monospace{Advance: 10}, 16, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(100)
			if got := s.IndexAt(tt.x, tt.start, content, tt.m); got != tt.want {
				t.Errorf("IndexAt(%d, %d) = %d, want %d", tt.x, tt.start, got, tt.want)
			}
		})
	}
}

func TestVisibleEndAndOffset(t *testing.T) {
	s := NewScroller(3)
	content := []rune("abcdef")
	m := Monospace{Advance: 1}

	if got := s.VisibleEnd(2, content, m); got != 5 {
		t.Errorf("VisibleEnd(2) = %d, want 5", got)
	}
	if got := s.OffsetOf(4, 2, content, m); got != 2 {
		t.Errorf("OffsetOf(4, 2) = %d, want 2", got)
	}
	if got := s.OffsetOf(1, 2, content, m); got != -1 {
		t.Errorf("OffsetOf(1, 2) = %d, want -1", got)
	}
}

func TestMeasureFunc(t *testing.T) {
	f := MeasureFunc(func(s string) int { return len(s) * 3 })
	if got := f.Width("ab"); got != 6 {
		t.Errorf("Width() = %d, want 6", got)
	}
	if got := (CellMeasurer{}).Width("a世"); got != 3 {
		t.Errorf("CellMeasurer.Width() = %d, want 3", got)
	}
}
