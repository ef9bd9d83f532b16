package model

import "testing"

func TestDisplayMode_String(t *testing.T) {
	tests := []struct {
		mode     DisplayMode
		expected string
	}{
		{ModeWindowed, "Windowed"},
		{ModeFullscreen, "Fullscreen"},
		{DisplayMode(42), "Unknown"},
	}

	for _, test := range tests {
		result := test.mode.String()
		if result != test.expected {
			t.Errorf("DisplayMode(%d).String() = %s, expected %s", test.mode, result, test.expected)
		}
	}
}

func TestDisplayMode_IsFullscreen(t *testing.T) {
	if ModeWindowed.IsFullscreen() {
		t.Error("ModeWindowed should not be fullscreen")
	}
	if !ModeFullscreen.IsFullscreen() {
		t.Error("ModeFullscreen should be fullscreen")
	}
}

func TestDisplayMode_Toggled(t *testing.T) {
	if ModeWindowed.Toggled() != ModeFullscreen {
		t.Error("Toggling windowed mode should give fullscreen")
	}
	if ModeFullscreen.Toggled() != ModeWindowed {
		t.Error("Toggling fullscreen mode should give windowed")
	}

	// Toggling twice is the identity
	if ModeWindowed.Toggled().Toggled() != ModeWindowed {
		t.Error("Double toggle should return to the original mode")
	}
}
