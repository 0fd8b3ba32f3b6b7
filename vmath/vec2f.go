package vmath

import "math"

// Vec2F is a float64 2D vector, used for analog stick and screen-space deltas
type Vec2F struct {
	X, Y float64
}

func V2FMag(v Vec2F) float64 {
	return math.Hypot(v.X, v.Y)
}

func V2FIsZero(v Vec2F) bool {
	return v.X == 0 && v.Y == 0
}
