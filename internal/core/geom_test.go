package core

import "testing"

func TestRectContainsIsStrict(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, false},
		{"left edge", 10, 15, false},
		{"right edge", 30, 15, false},
		{"top edge", 15, 10, false},
		{"bottom edge", 15, 25, false},
		{"just inside bottom-right", 29.99, 24.99, true},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestColorBytes(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		r, g, b, a uint8
	}{
		{"opaque red", RGBA(0.8, 0, 0, 1), 204, 0, 0, 255},
		{"clamped", RGBA(-1, 2, 0.5, 1), 0, 255, 128, 255},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, g, b, a := tc.c.Bytes()
			if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
				t.Errorf("Bytes() = (%d, %d, %d, %d), expected (%d, %d, %d, %d)", r, g, b, a, tc.r, tc.g, tc.b, tc.a)
			}
		})
	}
}
