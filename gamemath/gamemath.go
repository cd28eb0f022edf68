// Package gamemath holds the small float helpers shared by the plugins:
// clamping, interpolation, angle handling and distance tests. Everything is
// safe on degenerate input (zero-length vectors, inverted ranges) and never
// panics, since these run inside per-frame update paths.
package gamemath

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates from a to b by t (t is not clamped).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Dist returns the euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistSq returns the squared distance between two points. Use this for
// comparisons to avoid the sqrt.
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize returns the unit vector of (dx, dy). A zero-length input yields
// (0, 0) rather than NaN.
func Normalize(dx, dy float64) (float64, float64) {
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0, 0
	}
	l := math.Sqrt(lenSq)
	return dx / l, dy / l
}

// NormalizeAngle wraps a into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// AngleDiff returns the smallest signed rotation from a to b.
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// PointSegmentDist returns the distance from point (px, py) to the segment
// (ax, ay)-(bx, by). A zero-length segment degrades to point distance.
func PointSegmentDist(px, py, ax, ay, bx, by float64) float64 {
	abx := bx - ax
	aby := by - ay
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return Dist(px, py, ax, ay)
	}
	t := Clamp01(((px-ax)*abx + (py-ay)*aby) / lenSq)
	return Dist(px, py, ax+abx*t, ay+aby*t)
}

// CircleHit reports whether two circles overlap.
func CircleHit(x1, y1, r1, x2, y2, r2 float64) bool {
	r := r1 + r2
	return DistSq(x1, y1, x2, y2) <= r*r
}

// MoveToward moves current toward target by at most maxDelta.
func MoveToward(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
