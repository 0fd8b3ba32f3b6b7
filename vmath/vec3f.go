package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world units
// Axes follow the scene convention: +Y up, -Z is "forward" at yaw 0
type Vec3F struct {
	X, Y, Z float64
}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FDist returns the Euclidean distance between two points
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FCapMag limits the magnitude of v to max, preserving direction
// Vectors already within max are returned unchanged
func V3FCapMag(v Vec3F, max float64) Vec3F {
	magSq := V3FMagSq(v)
	if magSq <= max*max || magSq == 0 {
		return v
	}
	return V3FScale(v, max/math.Sqrt(magSq))
}

// V3FRotateYaw rotates v around the +Y axis by yaw radians (right-handed)
// At yaw 0 local -Z maps to world -Z; at yaw π/2 it maps to world -X
func V3FRotateYaw(v Vec3F, yaw float64) Vec3F {
	sin, cos := math.Sincos(yaw)
	return Vec3F{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// V3FApproxEqual compares component-wise within eps
func V3FApproxEqual(a, b Vec3F, eps float64) bool {
	return ApproxEqual(a.X, b.X, eps) && ApproxEqual(a.Y, b.Y, eps) && ApproxEqual(a.Z, b.Z, eps)
}
