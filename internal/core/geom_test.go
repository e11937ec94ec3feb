package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	if !r.Contains(5, 5) {
		t.Error("Contains should include top-left corner")
	}
	if !r.Contains(14, 14) {
		t.Error("Contains should include inner bottom-right cell")
	}
	if r.Contains(15, 15) {
		t.Error("Contains should exclude the exclusive bottom-right edge")
	}
	if r.Contains(4, 5) {
		t.Error("Contains should exclude points left of the rect")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 {
		t.Error("Clamp should not change in-range values")
	}
	if Clamp(-5, 0, 10) != 0 {
		t.Error("Clamp should raise values below min")
	}
	if Clamp(15, 0, 10) != 10 {
		t.Error("Clamp should lower values above max")
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs is wrong")
	}
}

func TestPoint(t *testing.T) {
	p := Pt(3, 4)
	if p.X != 3 || p.Y != 4 {
		t.Errorf("Pt(3, 4) = %+v", p)
	}
	if Origin.X != 0 || Origin.Y != 0 {
		t.Errorf("Origin should be the zero point, got %+v", Origin)
	}
}
