package key

import "testing"

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		r      rune
		wantOK bool
		shared bool
	}{
		{"special", KeyEnter, 0, true, false},
		{"ascii", KeyRune, 'a', true, false},
		{"latin1", KeyRune, 'é', true, false},
		{"last own code", KeyRune, MaxRune, true, false},
		{"beyond latin1", KeyRune, '世', true, true},
		{"euro", KeyRune, '€', true, true},
		{"negative rune", KeyRune, -1, false, false},
		{"none", KeyNone, 0, false, false},
		{"out of range key", Key(9999), 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := CodeFor(tt.key, tt.r)
			if ok != tt.wantOK {
				t.Fatalf("CodeFor(%s, %q) ok = %v, want %v", tt.key, tt.r, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !c.Valid() {
				t.Errorf("code %d not valid", c)
			}
			if c.Key() != tt.key {
				t.Errorf("Key() = %s, want %s", c.Key(), tt.key)
			}
			if (c == CodeOther) != tt.shared {
				t.Errorf("CodeFor(%q) = %s, shared = %v", tt.r, c, tt.shared)
			}
			if tt.key == KeyRune && !tt.shared && c.Rune() != tt.r {
				t.Errorf("Rune() = %q, want %q", c.Rune(), tt.r)
			}
		})
	}
}

func TestCodeString(t *testing.T) {
	enter, _ := CodeFor(KeyEnter, 0)
	x, _ := RuneCode('x')

	if got := enter.String(); got != "Enter" {
		t.Errorf("String() = %q, want %q", got, "Enter")
	}
	if got := x.String(); got != "'x'" {
		t.Errorf("String() = %q, want %q", got, "'x'")
	}
	if got := Code(0).String(); got != "Code(0)" {
		t.Errorf("String() = %q, want %q", got, "Code(0)")
	}
}

func TestStateBounds(t *testing.T) {
	var s State
	s.Set(Code(NumCodes+5), true)
	if s.IsDown(Code(NumCodes + 5)) {
		t.Error("out-of-range code reported down")
	}

	c, _ := RuneCode('z')
	s.Set(c, true)
	if !s.IsDown(c) {
		t.Error("Set code not reported down")
	}
	s.Clear()
	if s.IsDown(c) {
		t.Error("code still down after Clear")
	}
}

func TestStateSetRune(t *testing.T) {
	var s State
	s.SetRune('ж', true)
	if !s.IsDown(CodeOther) || s.Other() != 'ж' {
		t.Errorf("IsDown(CodeOther) = %v, Other() = %q; want true, 'ж'", s.IsDown(CodeOther), s.Other())
	}
	s.SetRune('ж', false)
	if s.IsDown(CodeOther) {
		t.Error("CodeOther still down")
	}

	s.SetRune('b', true)
	b, _ := RuneCode('b')
	if !s.IsDown(b) {
		t.Error("SetRune('b') did not set its own code")
	}
	s.SetRune(-1, true)
	if s.IsDown(Code(0)) {
		t.Error("negative rune set a code")
	}
}
