package gamemath

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		expected   float64
	}{
		{"inside range", 5, 0, 10, 5},
		{"below range", -3, 0, 10, 0},
		{"above range", 42, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tc.v, tc.lo, tc.hi, got, tc.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); !approxEqual(got, 5) {
		t.Errorf("Lerp(0, 10, 0.5) = %v, expected 5", got)
	}
	if got := Lerp(10, 20, 0); !approxEqual(got, 10) {
		t.Errorf("Lerp(10, 20, 0) = %v, expected 10", got)
	}
	if got := Lerp(10, 20, 1); !approxEqual(got, 20) {
		t.Errorf("Lerp(10, 20, 1) = %v, expected 20", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		nx, ny float64
	}{
		{"unit x", 1, 0, 1, 0},
		{"unit y", 0, -1, 0, -1},
		{"diagonal", 3, 4, 0.6, 0.8},
		{"zero length stays zero", 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			nx, ny := Normalize(tc.dx, tc.dy)
			if !approxEqual(nx, tc.nx) || !approxEqual(ny, tc.ny) {
				t.Errorf("Normalize(%v, %v) = (%v, %v), expected (%v, %v)",
					tc.dx, tc.dy, nx, ny, tc.nx, tc.ny)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"already normal", 1, 1},
		{"wraps positive", 3 * math.Pi, math.Pi},
		{"wraps negative", -3 * math.Pi, math.Pi},
		{"negative pi maps up", -math.Pi, math.Pi},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeAngle(tc.in); !approxEqual(got, tc.expected) {
				t.Errorf("NormalizeAngle(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestPointSegmentDist(t *testing.T) {
	tests := []struct {
		name                   string
		px, py, ax, ay, bx, by float64
		expected               float64
	}{
		{"perpendicular to middle", 5, 3, 0, 0, 10, 0, 3},
		{"beyond segment end", 15, 0, 0, 0, 10, 0, 5},
		{"before segment start", -4, 0, 0, 0, 10, 0, 4},
		{"zero-length segment", 3, 4, 0, 0, 0, 0, 5},
		{"on the segment", 5, 0, 0, 0, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PointSegmentDist(tc.px, tc.py, tc.ax, tc.ay, tc.bx, tc.by)
			if !approxEqual(got, tc.expected) {
				t.Errorf("PointSegmentDist = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleHit(t *testing.T) {
	if !CircleHit(0, 0, 5, 8, 0, 5) {
		t.Error("touching circles should overlap")
	}
	if CircleHit(0, 0, 2, 10, 0, 2) {
		t.Error("distant circles should not overlap")
	}
}

func TestMoveToward(t *testing.T) {
	if got := MoveToward(0, 10, 3); got != 3 {
		t.Errorf("MoveToward(0, 10, 3) = %v, expected 3", got)
	}
	if got := MoveToward(0, 2, 3); got != 2 {
		t.Errorf("MoveToward(0, 2, 3) = %v, expected 2 (snap to target)", got)
	}
	if got := MoveToward(10, 0, 4); got != 6 {
		t.Errorf("MoveToward(10, 0, 4) = %v, expected 6", got)
	}
}

func TestApplyFriction(t *testing.T) {
	if got := ApplyFriction(5, 2); got != 3 {
		t.Errorf("ApplyFriction(5, 2) = %v, expected 3", got)
	}
	if got := ApplyFriction(-5, 2); got != -3 {
		t.Errorf("ApplyFriction(-5, 2) = %v, expected -3", got)
	}
	if got := ApplyFriction(1, 2); got != 0 {
		t.Errorf("ApplyFriction(1, 2) = %v, expected 0 (stops at zero)", got)
	}
}
