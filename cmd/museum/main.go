package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/museum/app"
	"github.com/lixenwraith/museum/config"
	"github.com/lixenwraith/museum/host/window"
	"github.com/lixenwraith/museum/logging"
	"github.com/lixenwraith/museum/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment
	flag.StringVar(&cfg.ScenePath, "scene", cfg.ScenePath, "scene YAML replacing the built-in room")
	flag.StringVar(&cfg.KeymapPath, "keymap", cfg.KeymapPath, "key override YAML")
	flag.StringVar(&cfg.RemoteAddr, "remote", cfg.RemoteAddr, "controller bridge listen address, e.g. :8090")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log to file and show the metric panel")
	flag.BoolVar(&cfg.AudioEnabled, "audio", cfg.AudioEnabled, "play interaction cues")
	flag.IntVar(&cfg.WindowWidth, "width", cfg.WindowWidth, "window width")
	flag.IntVar(&cfg.WindowHeight, "height", cfg.WindowHeight, "window height")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if f := logging.Setup(cfg.Debug); f != nil {
		defer f.Close()
	}

	reg := status.NewRegistry()
	game := window.New(window.Options{
		FrameInterval: cfg.FrameInterval,
		Width:         cfg.WindowWidth,
		Height:        cfg.WindowHeight,
		Debug:         cfg.Debug,
		Registry:      reg,
	})

	a, err := app.New(app.Options{Config: cfg, Platform: game, Registry: reg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "museum: %v\n", err)
		os.Exit(1)
	}
	game.Attach(a.Museum)

	runErr := game.Run()
	if err := a.Close(); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "museum: %v\n", runErr)
		os.Exit(1)
	}
}
