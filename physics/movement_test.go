package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/museum/vmath"
)

var forward = vmath.Vec3F{Z: -1}

func TestStepForwardOneSecond(t *testing.T) {
	in := NewIntegrator()
	start := vmath.Vec3F{X: 0, Y: 1.8, Z: 8}

	pos := start
	for i := 0; i < 60; i++ {
		pos = in.Step(pos, 0, forward, 1.0/60)
	}
	if math.Abs(pos.Z-2) > 1e-9 {
		t.Errorf("z after 1s = %v, want 2", pos.Z)
	}
	if pos.X != 0 {
		t.Errorf("x drifted to %v", pos.X)
	}
}

func TestStepYawOpposites(t *testing.T) {
	in := NewIntegrator()
	start := vmath.Vec3F{Y: 1.8}

	a := vmath.V3FSub(in.Step(start, 0, forward, 0.1), start)
	b := vmath.V3FSub(in.Step(start, math.Pi, forward, 0.1), start)

	if !vmath.V3FApproxEqual(a, vmath.V3FScale(b, -1), 1e-9) {
		t.Errorf("deltas %+v and %+v are not opposite", a, b)
	}
}

func TestStepYawRelative(t *testing.T) {
	in := NewIntegrator()
	tests := []struct {
		name string
		yaw  float64
		dir  vmath.Vec3F
		want vmath.Vec3F
	}{
		{"forward at yaw 0", 0, forward, vmath.Vec3F{Z: -0.6}},
		{"forward facing -X", math.Pi / 2, forward, vmath.Vec3F{X: -0.6}},
		{"strafe right at yaw 0", 0, vmath.Vec3F{X: 1}, vmath.Vec3F{X: 0.6}},
		{"back facing +Z", math.Pi, vmath.Vec3F{Z: 1}, vmath.Vec3F{Z: -0.6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := in.Delta(tt.yaw, tt.dir, 0.1)
			if !vmath.V3FApproxEqual(got, tt.want, 1e-9) {
				t.Errorf("Delta() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStepClampPerAxis(t *testing.T) {
	in := NewIntegrator()
	// Diagonal into the back-left corner; both axes clamp independently
	pos := vmath.Vec3F{X: -10, Y: 1.8, Z: -10}
	dir := vmath.V3FNormalize(vmath.Vec3F{X: -1, Z: -1})
	pos = in.Step(pos, 0, dir, 1)
	if pos.X != in.Bounds.XMin || pos.Z != in.Bounds.ZMin {
		t.Errorf("corner clamp = (%v, %v), want (%v, %v)", pos.X, pos.Z, in.Bounds.XMin, in.Bounds.ZMin)
	}

	// Sliding along a wall keeps the free axis moving
	pos = vmath.Vec3F{X: 10.5, Y: 1.8, Z: 0}
	pos = in.Step(pos, 0, vmath.V3FNormalize(vmath.Vec3F{X: 1, Z: -1}), 0.5)
	if pos.X != in.Bounds.XMax {
		t.Errorf("x = %v, want clamped %v", pos.X, in.Bounds.XMax)
	}
	if pos.Z >= 0 {
		t.Errorf("z did not slide: %v", pos.Z)
	}
}

func TestStepInvariantsRandomWalk(t *testing.T) {
	in := NewIntegrator()
	rng := rand.New(rand.NewSource(42))
	pos := vmath.Vec3F{X: 0, Y: 1.8, Z: 8}

	for i := 0; i < 5000; i++ {
		dir := vmath.Vec3F{X: rng.Float64()*2 - 1, Z: rng.Float64()*2 - 1, Y: rng.Float64()*4 - 2}
		dir = vmath.V3FCapMag(dir, 1)
		yaw := rng.Float64() * 2 * math.Pi
		dt := rng.Float64() * 0.5
		pos = in.Step(pos, yaw, dir, dt)

		if !in.Bounds.Contains(pos) {
			t.Fatalf("step %d: %+v escaped bounds", i, pos)
		}
		if pos.Y != in.EyeHeight {
			t.Fatalf("step %d: y = %v, want %v", i, pos.Y, in.EyeHeight)
		}
	}
}

func TestStepPinsHeightWithoutMotion(t *testing.T) {
	in := NewIntegrator()
	pos := in.Step(vmath.Vec3F{X: 1, Y: 5, Z: 1}, 0, vmath.Vec3F{}, 0)
	if pos.Y != in.EyeHeight || pos.X != 1 || pos.Z != 1 {
		t.Errorf("Step() = %+v", pos)
	}
}
