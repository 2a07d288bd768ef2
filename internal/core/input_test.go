package core

import "testing"

func TestInputFrameLatestWins(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("NewInputFrame() should be empty")
	}

	f.Set(KeyLeft)
	f.Set(KeyUp)
	if f.Latest() != KeyUp {
		t.Errorf("Latest() = %v, expected up", f.Latest())
	}
	if f.Has(KeyLeft) {
		t.Error("Has(left) should be false after a later key")
	}
	if !f.Has(KeyUp) {
		t.Error("Has(up) should be true")
	}

	f.Clear()
	if !f.Empty() || f.Has(KeyNone) {
		t.Error("Clear() should leave an empty frame")
	}
}

func TestKeyCodeValues(t *testing.T) {
	tests := []struct {
		key      KeyCode
		code     int
		expected string
	}{
		{KeySpace, 32, "space"},
		{KeyUp, 273, "up"},
		{KeyDown, 274, "down"},
		{KeyRight, 275, "right"},
		{KeyLeft, 276, "left"},
		{KeyEnter, 13, "enter"},
	}

	for _, tc := range tests {
		if int(tc.key) != tc.code {
			t.Errorf("%s = %d, expected %d", tc.expected, int(tc.key), tc.code)
		}
		if tc.key.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.key.String(), tc.expected)
		}
	}
	if KeyCode(9999).String() != "unknown" {
		t.Errorf("String() for unmapped code = %q", KeyCode(9999).String())
	}
}
