// Package config loads runtime settings from the environment.
// Command-line flags in cmd/* override the parsed values.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/museum/audio"
	"github.com/lixenwraith/museum/parameter"
)

// Config is the process configuration shared by both hosts
type Config struct {
	// ScenePath replaces the built-in room when set
	ScenePath string `env:"MUSEUM_SCENE"`
	// KeymapPath merges key overrides onto the default table
	KeymapPath string `env:"MUSEUM_KEYMAP"`
	// PhaseGraph replaces the embedded phase graph
	PhaseGraph string `env:"MUSEUM_PHASE_GRAPH"`

	Debug bool `env:"MUSEUM_DEBUG"`

	// RemoteAddr enables the controller bridge, e.g. ":8090"
	RemoteAddr string `env:"MUSEUM_REMOTE_ADDR"`

	AudioEnabled bool    `env:"MUSEUM_AUDIO"        envDefault:"true"`
	AudioVolume  float64 `env:"MUSEUM_AUDIO_VOLUME" envDefault:"0.6"`

	LookSensitivity float64       `env:"MUSEUM_LOOK_SENSITIVITY" envDefault:"0.002"`
	FrameInterval   time.Duration `env:"MUSEUM_FRAME_INTERVAL"   envDefault:"16ms"`

	// Window host
	WindowWidth  int `env:"MUSEUM_WINDOW_WIDTH"  envDefault:"1280"`
	WindowHeight int `env:"MUSEUM_WINDOW_HEIGHT" envDefault:"720"`
}

// Load parses the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c Config) Validate() error {
	if c.AudioVolume < 0 || c.AudioVolume > 1 {
		return fmt.Errorf("audio volume %v outside [0, 1]", c.AudioVolume)
	}
	if c.LookSensitivity <= 0 {
		return errors.New("look sensitivity must be positive")
	}
	if c.FrameInterval <= 0 || c.FrameInterval > parameter.MaxFrameDelta {
		return fmt.Errorf("frame interval %v outside (0, %v]", c.FrameInterval, parameter.MaxFrameDelta)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %dx%d invalid", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Audio returns playback settings derived from c
func (c Config) Audio() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.AudioEnabled
	ac.MasterVolume = c.AudioVolume
	return ac
}
