package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyBackspace, "Backspace"},
		{KeyLeft, "Left"},
		{KeyF12, "F12"},
		{KeyRune, "Rune"},
		{Key(500), "Key(500)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyClassification(t *testing.T) {
	if KeyNone.IsSpecial() || KeyRune.IsSpecial() {
		t.Error("KeyNone and KeyRune must not be special")
	}
	if !KeyHome.IsSpecial() || !KeyHome.IsNavigationKey() {
		t.Error("KeyHome should be a special navigation key")
	}
	if !KeyRight.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey mismatch")
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Enter", KeyEnter},
		{"  esc ", KeyEscape},
		{"BS", KeyBackspace},
		{"f5", KeyF5},
		{"F12", KeyF12},
		{"f13", KeyNone},
		{"fx", KeyNone},
		{"bogus", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}
