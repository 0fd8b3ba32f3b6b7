// Package view owns pointer capture and camera orientation
package view

import (
	"math"

	"github.com/lixenwraith/museum/event"
	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/status"
	"github.com/lixenwraith/museum/vmath"
)

// CaptureState is the pointer capture lifecycle state
type CaptureState uint8

const (
	Released CaptureState = iota
	Captured
)

func (s CaptureState) String() string {
	if s == Captured {
		return "captured"
	}
	return "released"
}

// Platform is the host's exclusive pointer capability
type Platform interface {
	// Supported reports whether capture is available at all
	Supported() bool
	// Acquire grabs the pointer; returns false if the platform refused
	Acquire() bool
	// Release returns the pointer to the user
	Release()
}

// CameraPose is the camera position and orientation
// Yaw 0 looks toward -Z; positive pitch looks up
type CameraPose struct {
	Position vmath.Vec3F
	Yaw      float64
	Pitch    float64
}

// Forward returns the horizontal unit look direction
func (p CameraPose) Forward() vmath.Vec3F {
	return vmath.V3FRotateYaw(vmath.Vec3F{Z: -1}, p.Yaw)
}

// ChangeFunc observes capture transitions
type ChangeFunc func(state CaptureState)

// Controller is the sole writer of capture state and camera orientation
// Camera position is written by the motion integrator through SetPosition
type Controller struct {
	platform    Platform
	state       CaptureState
	pose        CameraPose
	sensitivity float64
	pitchLimit  float64
	onChange    ChangeFunc
}

// NewController creates a released controller at pose
// A nil platform behaves as unsupported
func NewController(platform Platform, pose CameraPose) *Controller {
	return &Controller{
		platform:    platform,
		pose:        pose,
		sensitivity: parameter.LookSensitivity,
		pitchLimit:  parameter.PitchLimit,
	}
}

// OnChange installs the capture transition observer
func (c *Controller) OnChange(fn ChangeFunc) {
	c.onChange = fn
}

// SetSensitivity sets radians per pointer unit
func (c *Controller) SetSensitivity(s float64) {
	if s > 0 {
		c.sensitivity = s
	}
}

// State returns the capture state
func (c *Controller) State() CaptureState {
	return c.state
}

// Captured reports whether the pointer is currently captured
func (c *Controller) Captured() bool {
	return c.state == Captured
}

// Pose returns the current camera pose
func (c *Controller) Pose() CameraPose {
	return c.pose
}

// SetPosition stores the integrated camera position
func (c *Controller) SetPosition(pos vmath.Vec3F) {
	c.pose.Position = pos
}

func (c *Controller) supported() bool {
	return c.platform != nil && c.platform.Supported()
}

func (c *Controller) setState(s CaptureState) {
	if c.state == s {
		return
	}
	c.state = s
	if c.onChange != nil {
		c.onChange(s)
	}
}

// Acquire requests capture in response to a user gesture
// No-op when unsupported, refused, or already captured
func (c *Controller) Acquire() {
	if c.state == Captured || !c.supported() {
		return
	}
	if !c.platform.Acquire() {
		return
	}
	c.setState(Captured)
}

// Release gives the pointer back; idempotent
func (c *Controller) Release() {
	if c.state == Released {
		return
	}
	if c.supported() {
		c.platform.Release()
	}
	c.setState(Released)
}

// Lost records a release initiated by the platform without calling back into it
func (c *Controller) Lost() {
	c.setState(Released)
}

// Look applies a raw pointer delta; orientation is frozen while released
func (c *Controller) Look(dx, dy float64) {
	if c.state != Captured {
		return
	}
	c.pose.Yaw = vmath.WrapAngle(c.pose.Yaw - dx*c.sensitivity)
	c.pose.Pitch = vmath.Clamp(c.pose.Pitch-dy*c.sensitivity, -c.pitchLimit, c.pitchLimit)
}

// Teleport sets an absolute pose and forces Released
// Pitch is leveled so the next capture starts from a horizontal view
func (c *Controller) Teleport(pos vmath.Vec3F, yaw float64) {
	c.pose.Position = pos
	c.pose.Yaw = yaw
	c.pose.Pitch = 0
	c.Release()
}

// HandleEvent implements event.Handler for camera commands
func (c *Controller) HandleEvent(reg *status.Registry, ev event.GameEvent) {
	if ev.Type != event.EventCameraTeleport {
		return
	}
	p, ok := ev.Payload.(*event.CameraTeleportPayload)
	if !ok || p == nil {
		return
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Z) || math.IsNaN(p.Yaw) {
		return
	}
	c.Teleport(vmath.Vec3F{X: p.X, Y: p.Y, Z: p.Z}, p.Yaw)
	if reg != nil {
		reg.Ints.Get(status.KeyTeleports).Add(1)
	}
}

// EventTypes implements event.Handler
func (c *Controller) EventTypes() []event.EventType {
	return []event.EventType{event.EventCameraTeleport}
}
