package core

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Rect
		inclusive bool
		expected  bool
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
			name:     "touching edge strict",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:      "touching edge inclusive",
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(10, 0, 10, 10),
			inclusive: true,
			expected:  true,
		},
		{
			name:      "touching corner inclusive",
			a:         NewRect(0, 0, 10, 10),
			b:         NewRect(10, 10, 10, 10),
			inclusive: true,
			expected:  true,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b, tc.inclusive)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a, tc.inclusive)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestCircleOverlapsRect(t *testing.T) {
	paddle := NewRect(350, 570, 100, 20)

	resting := Circle{C: Vec2{X: 400, Y: 560}, R: 10}
	if !resting.OverlapsRect(paddle, true) {
		t.Error("ball resting on the paddle should overlap inclusively")
	}
	if resting.OverlapsRect(paddle, false) {
		t.Error("ball resting on the paddle should not overlap strictly")
	}

	inside := Circle{C: Vec2{X: 400, Y: 565}, R: 10}
	if !inside.OverlapsRect(paddle, false) {
		t.Error("ball sunk into the paddle should overlap strictly")
	}

	away := Circle{C: Vec2{X: 100, Y: 100}, R: 10}
	if away.OverlapsRect(paddle, true) {
		t.Error("distant ball should not overlap")
	}
}

func TestPenetration(t *testing.T) {
	block := NewRect(0, 0, 78, 28)

	// Ball below the block, horizontally inside its span
	dx, dy := Penetration(Circle{C: Vec2{X: 39, Y: 35}, R: 10}, block)
	if dx != -39 {
		t.Errorf("dx = %v, expected -39", dx)
	}
	if dy != 7 {
		t.Errorf("dy = %v, expected 7", dy)
	}
	if ReflectAxis(dx, dy) != AxisY {
		t.Errorf("bottom-face hit should reflect Y, got %v", ReflectAxis(dx, dy))
	}

	// Ball to the right of the block, vertically inside its span
	dx, dy = Penetration(Circle{C: Vec2{X: 85, Y: 14}, R: 10}, block)
	if ReflectAxis(dx, dy) != AxisX {
		t.Errorf("side-face hit should reflect X, got %v (dx=%v dy=%v)", ReflectAxis(dx, dy), dx, dy)
	}
}

func TestReflectAxis(t *testing.T) {
	tests := []struct {
		dx, dy   float64
		expected Axis
	}{
		{-5, 3, AxisY},
		{3, -5, AxisX},
		{4, 4, AxisBoth},
		{0, 0, AxisBoth},
	}

	for _, tc := range tests {
		if got := ReflectAxis(tc.dx, tc.dy); got != tc.expected {
			t.Errorf("ReflectAxis(%v, %v) = %v, expected %v", tc.dx, tc.dy, got, tc.expected)
		}
	}
}

func TestReflect(t *testing.T) {
	v := Vec2{X: 3, Y: -4}

	if got := Reflect(v, AxisX); got != (Vec2{X: -3, Y: -4}) {
		t.Errorf("Reflect X = %v", got)
	}
	if got := Reflect(v, AxisY); got != (Vec2{X: 3, Y: 4}) {
		t.Errorf("Reflect Y = %v", got)
	}
	if got := Reflect(v, AxisBoth); got != (Vec2{X: -3, Y: 4}) {
		t.Errorf("Reflect both = %v", got)
	}
	if got := Reflect(v, AxisNone); got != v {
		t.Errorf("Reflect none = %v", got)
	}
	if math.Abs(Reflect(v, AxisBoth).Len()-v.Len()) > 1e-12 {
		t.Error("reflection must preserve speed")
	}
}

func TestCellRectContains(t *testing.T) {
	r := NewCellRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
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
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs should return the magnitude")
	}
}
