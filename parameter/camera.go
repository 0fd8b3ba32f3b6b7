package parameter

import "math"

// Mouse-look configuration
const (
	// LookSensitivity is radians of rotation per pixel of pointer movement
	LookSensitivity = 0.002

	// PitchLimit bounds vertical look to just under straight up/down
	PitchLimit = math.Pi/2 - 0.01
)
