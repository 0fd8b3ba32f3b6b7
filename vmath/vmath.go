package vmath

import "math"

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ApproxEqual reports |a-b| <= eps
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// WrapAngle normalizes an angle to (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
