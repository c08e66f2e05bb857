package requests

import "testing"

func TestControlValue(t *testing.T) {
	if v := ControlValue(0x0b); v != 0x0b00 {
		t.Errorf("ControlValue(0x0b) = %#04x, want 0x0b00", v)
	}
}

func TestControlIndex(t *testing.T) {
	if v := ControlIndex(1, 0); v != 0x0100 {
		t.Errorf("ControlIndex(1, 0) = %#04x, want 0x0100", v)
	}
	if v := ControlIndex(3, 2); v != 0x0302 {
		t.Errorf("ControlIndex(3, 2) = %#04x, want 0x0302", v)
	}
}
