package core

import (
	"math"
	"testing"
)

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
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			// Also test symmetry
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
	}{
		{"axis", Vec2{5, 0}},
		{"diagonal", Vec2{3, 4}},
		{"negative", Vec2{-7, 2}},
		{"tiny", Vec2{0.001, -0.002}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := tc.v.Normalize()
			if math.Abs(n.Len()-1.0) > 1e-9 {
				t.Errorf("Normalize().Len() = %v, expected 1", n.Len())
			}
		})
	}

	zero := Vec2{}.Normalize()
	if zero.X != 0 || zero.Y != 0 {
		t.Errorf("zero vector should normalize to zero, got %+v", zero)
	}
}

func TestVec2Dist(t *testing.T) {
	if d := Dist(Vec2{0, 0}, Vec2{3, 4}); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %v, expected 5", d)
	}
	if d := Dist(Vec2{1, 1}, Vec2{1, 1}); d != 0 {
		t.Errorf("Dist of identical points = %v, expected 0", d)
	}
	if d := (Vec2{3, 4}).Dist(Vec2{0, 0}); math.Abs(d-5) > 1e-9 {
		t.Errorf("Vec2.Dist = %v, expected 5", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(3, 2, '@', ColorBrightYellow)
	cell := s.GetCell(3, 2)
	if cell.Rune != '@' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell = %+v, expected @ in bright yellow", cell)
	}

	// Out of bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out-of-bounds reads should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawText(0, 0, "abcd")
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) not cleared", x, y)
			}
		}
	}
}
