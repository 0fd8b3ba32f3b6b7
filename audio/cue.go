package audio

import (
	"errors"

	"github.com/lixenwraith/museum/parameter"
)

// Cue identifies a short interface sound
type Cue int

const (
	CueNear     Cue = iota // Artwork or avatar came into range
	CueOpen                // Modal or dialog opened
	CueClose               // Overlay closed
	CueTeleport            // Camera jumped to a destination
	cueCount
)

var cueNames = [cueCount]string{"near", "open", "close", "teleport"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Config holds playback settings
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	Volumes      [cueCount]float64
}

// DefaultConfig returns enabled playback at moderate volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 0.6,
		SampleRate:   parameter.AudioSampleRate,
		Volumes: [cueCount]float64{
			CueNear:     0.8,
			CueOpen:     0.6,
			CueClose:    0.5,
			CueTeleport: 0.4,
		},
	}
}

// Volume returns the effective gain for c
func (c *Config) Volume(cue Cue) float64 {
	if cue < 0 || cue >= cueCount {
		return 0
	}
	v := c.Volumes[cue] * c.MasterVolume
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ErrDisabled is returned by Play when no output is available
var ErrDisabled = errors.New("audio disabled")
