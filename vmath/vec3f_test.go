package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestRotateYawForward(t *testing.T) {
	forward := Vec3F{0, 0, -1}

	tests := []struct {
		name string
		yaw  float64
		want Vec3F
	}{
		{"yaw 0 faces -Z", 0, Vec3F{0, 0, -1}},
		{"yaw π faces +Z", math.Pi, Vec3F{0, 0, 1}},
		{"yaw π/2 faces -X", math.Pi / 2, Vec3F{-1, 0, 0}},
		{"yaw -π/2 faces +X", -math.Pi / 2, Vec3F{1, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := V3FRotateYaw(forward, tc.yaw)
			if !V3FApproxEqual(got, tc.want, eps) {
				t.Errorf("V3FRotateYaw(%v, %v) = %v, want %v", forward, tc.yaw, got, tc.want)
			}
		})
	}
}

func TestRotateYawPreservesLength(t *testing.T) {
	v := Vec3F{0.3, 0, -0.8}
	for _, yaw := range []float64{0.1, 1, 2.5, -3} {
		got := V3FRotateYaw(v, yaw)
		if !ApproxEqual(V3FMag(got), V3FMag(v), eps) {
			t.Errorf("yaw %v: magnitude %v, want %v", yaw, V3FMag(got), V3FMag(v))
		}
	}
}

func TestCapMag(t *testing.T) {
	diag := V3FCapMag(Vec3F{1, 0, 1}, 1)
	if !ApproxEqual(V3FMag(diag), 1, eps) {
		t.Errorf("capped diagonal magnitude = %v, want 1", V3FMag(diag))
	}

	short := Vec3F{0.2, 0, -0.3}
	if got := V3FCapMag(short, 1); got != short {
		t.Errorf("short vector changed: %v", got)
	}

	if got := V3FCapMag(Vec3F{}, 1); got != (Vec3F{}) {
		t.Errorf("zero vector changed: %v", got)
	}
}

func TestBoundsClampPerAxis(t *testing.T) {
	b := BoundsXZ{XMin: -10.5, XMax: 10.5, ZMin: -10.5, ZMax: 10}

	got := b.Clamp(Vec3F{X: 12, Y: 3, Z: 4})
	want := Vec3F{X: 10.5, Y: 3, Z: 4}
	if got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}

	got = b.Clamp(Vec3F{X: -20, Y: 0, Z: 20})
	want = Vec3F{X: -10.5, Y: 0, Z: 10}
	if got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}

	if !b.Contains(Vec3F{X: 10.5, Z: -10.5}) {
		t.Error("edge point should be contained")
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(3 * math.Pi); !ApproxEqual(got, math.Pi, eps) {
		t.Errorf("WrapAngle(3π) = %v", got)
	}
	if got := WrapAngle(-3 * math.Pi / 2); !ApproxEqual(got, math.Pi/2, eps) {
		t.Errorf("WrapAngle(-3π/2) = %v", got)
	}
}
