package parameter

import "time"

// Loop timing
const (
	// FrameUpdateInterval is the host frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick duration after a stall (window drag, suspend)
	// Applied by the clock, never by the integrator
	MaxFrameDelta = 100 * time.Millisecond
)

// Event queue limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)
