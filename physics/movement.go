package physics

import (
	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/vmath"
)

// Integrator converts camera-local movement intent into bounded world motion
type Integrator struct {
	Speed     float64 // World units per second at full intent
	EyeHeight float64 // Fixed camera Y
	Bounds    vmath.BoundsXZ
}

// NewIntegrator returns an integrator with the default room constants
func NewIntegrator() Integrator {
	return Integrator{
		Speed:     parameter.MoveSpeed,
		EyeHeight: parameter.EyeHeight,
		Bounds: vmath.BoundsXZ{
			XMin: parameter.BoundsXMin, XMax: parameter.BoundsXMax,
			ZMin: parameter.BoundsZMin, ZMax: parameter.BoundsZMax,
		},
	}
}

// Delta returns the horizontal displacement for dir over dt seconds
// dir is camera-local (X right, Z backward) and is rotated by yaw into world space
func (in Integrator) Delta(yaw float64, dir vmath.Vec3F, dt float64) vmath.Vec3F {
	d := vmath.V3FRotateYaw(dir, yaw)
	d = vmath.V3FScale(d, in.Speed*dt)
	d.Y = 0
	return d
}

// Step advances pos by one tick
// The candidate is clamped per axis after the move, and Y is pinned to eye height
func (in Integrator) Step(pos vmath.Vec3F, yaw float64, dir vmath.Vec3F, dt float64) vmath.Vec3F {
	next := pos
	if dt > 0 {
		next = vmath.V3FAdd(pos, in.Delta(yaw, dir, dt))
	}
	next = in.Bounds.Clamp(next)
	next.Y = in.EyeHeight
	return next
}
