package parameter

import "time"

// Touch joystick
const (
	// JoystickDeadZone is the normalized magnitude below which analog input is zero
	JoystickDeadZone = 0.12

	// JoystickMaxRadius is the maximum stick travel in screen units (pixels)
	JoystickMaxRadius = 52.0
)

// Terminal key hold emulation
const (
	// KeyHoldTimeout releases a held key when no repeat arrives in time
	// Terminals report presses and repeats only, never releases
	KeyHoldTimeout = 180 * time.Millisecond

	// KeyHoldInitialTimeout covers the longer delay before the first autorepeat
	KeyHoldInitialTimeout = 550 * time.Millisecond
)
