package input

import (
	"math"

	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/vmath"
)

// noTouch marks the joystick as idle
const noTouch = -1

// Zone restricts where a drag may start, in host pixels
// A zero Zone accepts touches anywhere
type Zone struct {
	X, Y, W, H float64
}

func (z Zone) contains(x, y float64) bool {
	if z.W <= 0 || z.H <= 0 {
		return true
	}
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// Joystick is a single-finger virtual analog stick
// Vector is in [-1,1]², X right and Y down (toward the player)
type Joystick struct {
	DeadZone  float64
	MaxRadius float64
	Zone      Zone

	touchID          int
	originX, originY float64
	vec              vmath.Vec2F
}

// NewJoystick returns an idle joystick with default geometry
func NewJoystick() Joystick {
	return Joystick{
		DeadZone:  parameter.JoystickDeadZone,
		MaxRadius: parameter.JoystickMaxRadius,
		touchID:   noTouch,
	}
}

// Active reports whether a touch is being tracked
func (j *Joystick) Active() bool {
	return j.touchID != noTouch
}

// TouchID returns the tracked touch identifier, or -1
func (j *Joystick) TouchID() int {
	return j.touchID
}

// Vector returns the current analog output
func (j *Joystick) Vector() vmath.Vec2F {
	return j.vec
}

// Begin starts tracking a touch if none is tracked and it lands inside the zone
// Returns true when the touch was claimed
func (j *Joystick) Begin(id int, x, y float64) bool {
	if j.Active() || !j.Zone.contains(x, y) {
		return false
	}
	j.touchID = id
	j.originX, j.originY = x, y
	j.vec = vmath.Vec2F{}
	return true
}

// Move updates the vector from the tracked touch; foreign ids are ignored
func (j *Joystick) Move(id int, x, y float64) {
	if !j.Active() || id != j.touchID {
		return
	}

	dx, dy := x-j.originX, y-j.originY
	dist := math.Hypot(dx, dy)
	maxR := j.MaxRadius
	if maxR <= 0 {
		maxR = parameter.JoystickMaxRadius
	}
	if dist == 0 {
		j.vec = vmath.Vec2F{}
		return
	}

	travel := math.Min(dist, maxR) / maxR
	if travel < j.DeadZone {
		j.vec = vmath.Vec2F{}
		return
	}

	nx := travel * dx / dist
	ny := travel * dy / dist
	if math.Abs(nx) <= j.DeadZone {
		nx = 0
	}
	if math.Abs(ny) <= j.DeadZone {
		ny = 0
	}
	j.vec = vmath.Vec2F{X: nx, Y: ny}
}

// End handles a touch lift; active lists the ids still down
// The stick resets unless the tracked id is among them
func (j *Joystick) End(active []int) {
	if !j.Active() {
		return
	}
	for _, id := range active {
		if id == j.touchID {
			return
		}
	}
	j.Reset()
}

// Cancel handles a platform-aborted touch; active lists the ids still down
// A cancel for another finger leaves the tracked drag alone
func (j *Joystick) Cancel(id int, active []int) {
	if !j.Active() {
		return
	}
	if id == j.touchID {
		j.Reset()
		return
	}
	j.End(active)
}

// Reset returns the stick to the idle centered state
func (j *Joystick) Reset() {
	j.touchID = noTouch
	j.originX, j.originY = 0, 0
	j.vec = vmath.Vec2F{}
}
