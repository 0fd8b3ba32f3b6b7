// Package app assembles a museum with its services from a Config.
// Both hosts share this wiring; each supplies its own Platform.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/lixenwraith/museum/audio"
	"github.com/lixenwraith/museum/config"
	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/input"
	"github.com/lixenwraith/museum/remote"
	"github.com/lixenwraith/museum/scene"
	"github.com/lixenwraith/museum/service"
	"github.com/lixenwraith/museum/status"
	"github.com/lixenwraith/museum/view"
)

// Options are the host-supplied parts of an App
type Options struct {
	Config   config.Config
	Platform view.Platform
	Registry *status.Registry

	// AudioSink overrides the system speaker
	AudioSink audio.Sink
}

// App is a running museum and its services
type App struct {
	Museum   *engine.Museum
	Hub      *service.Hub
	Registry *status.Registry
	Audio    *audio.AudioService
	Remote   *remote.Bridge
}

// New builds the museum and starts audio and the remote bridge
func New(opts Options) (*App, error) {
	cfg := opts.Config

	sc := scene.Default()
	if cfg.ScenePath != "" {
		loaded, err := scene.LoadFile(cfg.ScenePath)
		if err != nil {
			return nil, fmt.Errorf("load scene: %w", err)
		}
		sc = loaded
	}

	kt, err := loadKeyTable(cfg.KeymapPath)
	if err != nil {
		return nil, err
	}

	reg := opts.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}

	m, err := engine.New(sc, engine.Options{
		Platform:        opts.Platform,
		Registry:        reg,
		KeyTable:        kt,
		PhaseGraph:      cfg.PhaseGraph,
		LookSensitivity: cfg.LookSensitivity,
	})
	if err != nil {
		return nil, err
	}

	a := &App{
		Museum:   m,
		Hub:      service.NewHub(),
		Registry: reg,
		Audio:    audio.NewService(opts.AudioSink),
		Remote:   remote.NewBridge(cfg.RemoteAddr, m.Queue(), reg),
	}
	if err := errors.Join(a.Hub.Register(a.Audio), a.Hub.Register(a.Remote)); err != nil {
		m.Close()
		return nil, err
	}
	if err := a.Hub.InitAll(cfg.Audio(), m, reg); err != nil {
		m.Close()
		return nil, fmt.Errorf("init services: %w", err)
	}
	if err := a.Hub.StartAll(); err != nil {
		_ = a.Hub.StopAll()
		m.Close()
		return nil, fmt.Errorf("start services: %w", err)
	}
	return a, nil
}

// Close stops services then tears the museum down
func (a *App) Close() error {
	err := a.Hub.StopAll()
	a.Museum.Close()
	return err
}

func loadKeyTable(path string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(base, override), nil
}
