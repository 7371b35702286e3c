package common

import "testing"

func TestSafeIntToUint8(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected uint8
	}{
		{"negative clamps to zero", -5, 0},
		{"zero", 0, 0},
		{"in range", 200, 200},
		{"max", 255, 255},
		{"overflow clamps", 300, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeIntToUint8(tt.input); got != tt.expected {
				t.Errorf("SafeIntToUint8(%d) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSafeIntToUint16(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected uint16
	}{
		{"negative clamps to zero", -1, 0},
		{"in range", 40000, 40000},
		{"overflow clamps", 70000, 65535},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeIntToUint16(tt.input); got != tt.expected {
				t.Errorf("SafeIntToUint16(%d) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSafeIntToInt16(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int16
	}{
		{"underflow clamps", -40000, -32768},
		{"negative in range", -100, -100},
		{"overflow clamps", 40000, 32767},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeIntToInt16(tt.input); got != tt.expected {
				t.Errorf("SafeIntToInt16(%d) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClampUint8(t *testing.T) {
	if got := ClampUint8(40, 31); got != 31 {
		t.Errorf("ClampUint8(40, 31) = %d, want 31", got)
	}
	if got := ClampUint8(20, 31); got != 20 {
		t.Errorf("ClampUint8(20, 31) = %d, want 20", got)
	}
}
