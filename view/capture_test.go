package view

import (
	"math"
	"testing"

	"github.com/lixenwraith/museum/event"
	"github.com/lixenwraith/museum/status"
	"github.com/lixenwraith/museum/vmath"
)

type fakePlatform struct {
	supported bool
	refuse    bool
	acquires  int
	releases  int
}

func (p *fakePlatform) Supported() bool { return p.supported }
func (p *fakePlatform) Acquire() bool {
	p.acquires++
	return !p.refuse
}
func (p *fakePlatform) Release() { p.releases++ }

func newTestController() (*Controller, *fakePlatform, *[]CaptureState) {
	p := &fakePlatform{supported: true}
	c := NewController(p, CameraPose{Position: vmath.Vec3F{Y: 1.8, Z: 8}})
	var changes []CaptureState
	c.OnChange(func(s CaptureState) { changes = append(changes, s) })
	return c, p, &changes
}

func TestAcquireRelease(t *testing.T) {
	c, p, changes := newTestController()

	c.Acquire()
	c.Acquire()
	if !c.Captured() || p.acquires != 1 {
		t.Fatalf("captured=%v acquires=%d", c.Captured(), p.acquires)
	}

	c.Release()
	c.Release()
	if c.Captured() || p.releases != 1 {
		t.Errorf("captured=%v releases=%d", c.Captured(), p.releases)
	}
	if len(*changes) != 2 {
		t.Errorf("changes = %v, want 2 transitions", *changes)
	}
}

func TestUnsupportedPlatformIsNoop(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
	}{
		{"nil platform", nil},
		{"unsupported", &fakePlatform{supported: false}},
		{"refused", &fakePlatform{supported: true, refuse: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.platform, CameraPose{})
			c.Acquire()
			if c.Captured() {
				t.Error("capture acquired without platform support")
			}
			c.Release()
			c.Lost()
		})
	}
}

func TestLostDoesNotCallPlatform(t *testing.T) {
	c, p, _ := newTestController()
	c.Acquire()
	c.Lost()
	if c.Captured() {
		t.Error("still captured after Lost")
	}
	if p.releases != 0 {
		t.Errorf("platform release called %d times", p.releases)
	}
}

func TestLookFrozenWhileReleased(t *testing.T) {
	c, _, _ := newTestController()
	c.Look(100, 100)
	if c.Pose().Yaw != 0 || c.Pose().Pitch != 0 {
		t.Errorf("orientation changed while released: %+v", c.Pose())
	}

	c.Acquire()
	c.Look(100, 0)
	if got := c.Pose().Yaw; math.Abs(got+0.2) > 1e-12 {
		t.Errorf("yaw = %v, want -0.2", got)
	}

	c.Look(0, -1e6)
	if got := c.Pose().Pitch; got > math.Pi/2 || got <= 0 {
		t.Errorf("pitch not clamped: %v", got)
	}
}

func TestTeleportCommand(t *testing.T) {
	c, _, _ := newTestController()
	c.Acquire()
	c.Look(50, 50)

	q := event.NewEventQueue()
	router := event.NewRouter[*status.Registry](q)
	router.Register(c)
	reg := status.NewRegistry()

	q.Push(event.GameEvent{
		Type:    event.EventCameraTeleport,
		Payload: &event.CameraTeleportPayload{X: -7.5, Y: 1.8, Z: -1.5, Yaw: math.Pi / 2},
	})
	router.DispatchAll(reg)

	pose := c.Pose()
	if pose.Position != (vmath.Vec3F{X: -7.5, Y: 1.8, Z: -1.5}) {
		t.Errorf("position = %+v", pose.Position)
	}
	if pose.Yaw != math.Pi/2 || pose.Pitch != 0 {
		t.Errorf("yaw/pitch = %v/%v", pose.Yaw, pose.Pitch)
	}
	if c.Captured() {
		t.Error("teleport must release capture")
	}
	if reg.Ints.Get(status.KeyTeleports).Load() != 1 {
		t.Error("teleport not counted")
	}

	// Malformed payloads are ignored
	router.Dispatch(reg, event.GameEvent{Type: event.EventCameraTeleport, Payload: "bad"})
	if c.Pose().Position != pose.Position {
		t.Error("bad payload moved camera")
	}
}

func TestForward(t *testing.T) {
	p := CameraPose{Yaw: math.Pi / 2}
	f := p.Forward()
	if math.Abs(f.X+1) > 1e-12 || math.Abs(f.Z) > 1e-12 {
		t.Errorf("Forward() = %+v, want -X", f)
	}
}
