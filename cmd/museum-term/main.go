package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/museum/app"
	"github.com/lixenwraith/museum/config"
	"github.com/lixenwraith/museum/host/term"
	"github.com/lixenwraith/museum/logging"
	"github.com/lixenwraith/museum/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.ScenePath, "scene", cfg.ScenePath, "scene YAML replacing the built-in room")
	flag.StringVar(&cfg.KeymapPath, "keymap", cfg.KeymapPath, "key override YAML")
	flag.StringVar(&cfg.RemoteAddr, "remote", cfg.RemoteAddr, "controller bridge listen address, e.g. :8090")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log to file and show the metric panel")
	flag.BoolVar(&cfg.AudioEnabled, "audio", cfg.AudioEnabled, "play interaction cues")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// stderr belongs to the screen; logs go to file or nowhere
	if f := logging.Setup(cfg.Debug); f != nil {
		defer f.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	reg := status.NewRegistry()
	h := term.New(screen, term.Options{
		FrameInterval: cfg.FrameInterval,
		Debug:         cfg.Debug,
		Registry:      reg,
	})
	defer term.Recover(h)

	a, err := app.New(app.Options{Config: cfg, Platform: h, Registry: reg})
	if err != nil {
		h.Fini()
		fmt.Fprintf(os.Stderr, "museum: %v\n", err)
		os.Exit(1)
	}
	h.Attach(a.Museum)

	quit := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		close(quit)
	}()

	h.Run(quit)

	if err := a.Close(); err != nil {
		log.Printf("shutdown: %v", err)
	}
	h.Fini()
}
