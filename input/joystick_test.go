package input

import (
	"math"
	"testing"
)

func TestJoystickDeadZone(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{"no travel", 0, 0, 0, 0},
		{"tiny drift", 2, 1, 0, 0},
		{"just under radial dead zone", 0.11 * 52, 0, 0, 0},
		{"diagonal under dead zone", 4, 4, 0, 0},
		{"full up", 0, -52, 0, -1},
		{"beyond max clamps", 100, 0, 1, 0},
		{"half right", 26, 0, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := NewJoystick()
			if !j.Begin(1, 100, 100) {
				t.Fatal("Begin rejected first touch")
			}
			j.Move(1, 100+tt.dx, 100+tt.dy)
			v := j.Vector()
			if math.Abs(v.X-tt.wantX) > 1e-9 || math.Abs(v.Y-tt.wantY) > 1e-9 {
				t.Errorf("Vector() = (%v, %v), want (%v, %v)", v.X, v.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestJoystickPerAxisDeadZone(t *testing.T) {
	j := NewJoystick()
	j.Begin(1, 0, 0)
	// Mostly up with a slight sideways component
	j.Move(1, 3, -50)
	v := j.Vector()
	if v.X != 0 {
		t.Errorf("sideways component %v should be suppressed", v.X)
	}
	if v.Y >= 0 {
		t.Errorf("expected forward (negative Y), got %v", v.Y)
	}
}

func TestJoystickTracksSingleTouch(t *testing.T) {
	j := NewJoystick()
	j.Begin(7, 0, 0)

	if j.Begin(8, 10, 10) {
		t.Error("second finger must not be claimed")
	}

	j.Move(8, 52, 0)
	if v := j.Vector(); v.X != 0 || v.Y != 0 {
		t.Errorf("foreign touch moved stick: %+v", v)
	}

	j.Move(7, 52, 0)
	if v := j.Vector(); v.X != 1 {
		t.Errorf("tracked touch X = %v, want 1", v.X)
	}
}

func TestJoystickEnd(t *testing.T) {
	j := NewJoystick()
	j.Begin(3, 0, 0)
	j.Move(3, 0, 52)

	// Another finger lifted; tracked one still down
	j.End([]int{3, 9})
	if !j.Active() {
		t.Fatal("stick reset while tracked touch still active")
	}

	j.End([]int{9})
	if j.Active() {
		t.Error("stick still active after tracked touch ended")
	}
	if v := j.Vector(); v.X != 0 || v.Y != 0 {
		t.Errorf("Vector after end = %+v, want zero", v)
	}

	j.Begin(4, 0, 0)
	j.Move(4, 52, 0)
	j.Cancel(4, nil)
	if j.Active() || j.Vector().X != 0 {
		t.Error("Cancel did not reset")
	}
}

func TestJoystickCancelForeignTouch(t *testing.T) {
	j := NewJoystick()
	j.Begin(1, 100, 500)
	j.Move(1, 100, 460)
	before := j.Vector()
	if before.Y == 0 {
		t.Fatal("setup: drag produced no vector")
	}

	j.Cancel(2, []int{1})
	if !j.Active() || j.Vector() != before {
		t.Errorf("second finger cancel changed the stick: active=%v vec=%+v", j.Active(), j.Vector())
	}

	// A cancel that leaves the tracked id out of the still-down list ends the drag
	j.Cancel(2, nil)
	if j.Active() {
		t.Error("stick survived losing its touch")
	}
}

func TestJoystickZone(t *testing.T) {
	j := NewJoystick()
	j.Zone = Zone{X: 0, Y: 400, W: 200, H: 200}

	if j.Begin(1, 500, 100) {
		t.Error("touch outside zone claimed")
	}
	if !j.Begin(2, 50, 450) {
		t.Error("touch inside zone rejected")
	}
}
