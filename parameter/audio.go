package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioCueQueue is the pending cue capacity; cues beyond it are dropped
	AudioCueQueue = 16

	ChimeDuration = 350 * time.Millisecond
	ChimeAttack   = 5 * time.Millisecond
	ChimeRelease  = 300 * time.Millisecond

	ClickDuration = 60 * time.Millisecond
	ClickAttack   = 2 * time.Millisecond
	ClickRelease  = 40 * time.Millisecond

	// Close tone plays two descending notes
	CloseNoteDuration = 110 * time.Millisecond
	CloseAttack       = 5 * time.Millisecond
	CloseRelease      = 80 * time.Millisecond

	WhooshDuration = 250 * time.Millisecond
	WhooshAttack   = 60 * time.Millisecond
	WhooshRelease  = 150 * time.Millisecond
)
