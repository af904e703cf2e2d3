package key

import "testing"

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModShift | ModCommand, ModCommand, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModShift)
	if !mod.HasCtrl() || !mod.HasShift() {
		t.Errorf("With() = %s, want Ctrl+Shift", mod)
	}
	mod = mod.Without(ModCtrl)
	if mod.HasCtrl() || !mod.HasShift() {
		t.Errorf("Without(Ctrl) = %s, want Shift", mod)
	}
}

func TestModifierWordModifier(t *testing.T) {
	if !ModCtrl.WordModifier() || !ModAlt.WordModifier() {
		t.Error("Ctrl and Alt should both move by word")
	}
	if ModShift.WordModifier() || ModCommand.WordModifier() {
		t.Error("Shift and Command should not move by word")
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModCtrl | ModShift, "Ctrl+Shift"},
		{ModCtrl | ModAlt | ModShift | ModCommand, "Ctrl+Alt+Shift+Cmd"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier.String() = %q, want %q", got, tt.want)
		}
	}
}
