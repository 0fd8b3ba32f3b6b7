// Package term runs the museum in a terminal as a top-down map.
// Terminals report no key releases and no relative mouse motion,
// so both are reconstructed here before reaching the input aggregator.
package term

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/host"
	"github.com/lixenwraith/museum/input"
	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/status"
)

// Pointer scale per cell, approximating pixel deltas for look sensitivity
const (
	colPixels = 8.0
	rowPixels = 16.0
)

// Options configures a terminal host
type Options struct {
	Time          engine.TimeSource
	FrameInterval time.Duration
	Debug         bool
	Registry      *status.Registry
}

// Host owns the tcell screen and feeds the museum
type Host struct {
	screen tcell.Screen
	opts   Options
	time   engine.TimeSource
	clock  *engine.Clock
	holds  *KeyHolds

	m *engine.Museum

	lastX       int
	lastY       int
	lastValid   bool
	prevButtons tcell.ButtonMask

	layout layout
}

// New wraps an initialized screen
func New(screen tcell.Screen, opts Options) *Host {
	if opts.Time == nil {
		opts.Time = engine.NewTimeProvider()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = parameter.FrameUpdateInterval
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	return &Host{
		screen: screen,
		opts:   opts,
		time:   opts.Time,
		clock:  engine.NewClock(opts.Time),
		holds:  NewKeyHolds(),
	}
}

// Attach binds the museum the host drives; the museum must use h as its Platform
func (h *Host) Attach(m *engine.Museum) {
	h.m = m
}

// === view.Platform ===

// Supported implements view.Platform
func (h *Host) Supported() bool { return true }

// Acquire implements view.Platform; the cursor is hidden and motion becomes look
func (h *Host) Acquire() bool {
	h.lastValid = false
	h.screen.HideCursor()
	return true
}

// Release implements view.Platform; the cursor returns where the mouse last was
func (h *Host) Release() {
	h.lastValid = false
	h.screen.ShowCursor(h.lastX, h.lastY)
}

// === Events ===

// HandleEvent applies one tcell event; returns true when the user asked to quit
func (h *Host) HandleEvent(ev tcell.Event) bool {
	if h.m == nil {
		return false
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			h.holds.ReleaseAll()
			h.m.HandleInput(input.Event{Type: input.EventBlur})
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) {
	k, ok := translateKey(ev)
	if !ok {
		return
	}
	if !isHoldKey(h.m.KeyTable(), k) {
		h.m.HandleInput(input.Event{Type: input.EventKeyDown, Key: k})
		h.m.HandleInput(input.Event{Type: input.EventKeyUp, Key: k})
		return
	}
	repeat := h.holds.Press(k, h.time.Now())
	h.m.HandleInput(input.Event{Type: input.EventKeyDown, Key: k, Repeat: repeat})
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons &^ h.prevButtons
	h.prevButtons = buttons

	if h.m.Captured() && h.lastValid && (x != h.lastX || y != h.lastY) {
		h.m.HandleInput(input.Event{
			Type: input.EventPointerMove,
			DX:   float64(x-h.lastX) * colPixels,
			DY:   float64(y-h.lastY) * rowPixels,
		})
	}
	// Deltas only accumulate across captured samples
	h.lastX, h.lastY, h.lastValid = x, y, h.m.Captured()

	switch {
	case pressed&tcell.ButtonPrimary != 0:
		h.primaryClick(x, y)
	case pressed&tcell.ButtonSecondary != 0:
		h.m.HandleInput(input.Event{Type: input.EventSecondaryClick})
	}
}

// primaryClick resolves what lies under the click the way a pointer ray would
func (h *Host) primaryClick(x, y int) {
	p := h.m.Presentation()
	if p.Phase == engine.PhaseEntry {
		h.m.Enter()
		return
	}
	target := host.ClickTarget(p, h.layout.panel.contains(x, y), host.ActionableID(h.m.Proximity()), func() string {
		if !h.layout.valid {
			return ""
		}
		return h.layout.proj.Pick(h.m.Scene(), float64(x)+0.5, float64(y)+0.5, 1.5)
	})
	h.m.HandleInput(input.Event{Type: input.EventPrimaryClick, Target: target, X: float64(x), Y: float64(y)})
}

// Frame releases expired holds, ticks the museum and redraws
func (h *Host) Frame() {
	if h.m == nil {
		return
	}
	for _, k := range h.holds.Expire(h.time.Now()) {
		h.m.HandleInput(input.Event{Type: input.EventKeyUp, Key: k})
	}
	h.clock.Step(h.m)
	h.draw()
}

// Run polls events and renders until quit or the user exits
func (h *Host) Run(quit <-chan struct{}) {
	ticker := time.NewTicker(h.opts.FrameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-quit:
			return
		case ev, ok := <-events:
			if !ok || h.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			h.Frame()
		}
	}
}

// Fini restores the terminal
func (h *Host) Fini() {
	h.screen.Fini()
}

// Recover restores the terminal and exits when a panic is in flight
// Deferred first in main so the stack trace lands on a usable terminal
func Recover(h *Host) {
	r := recover()
	if r == nil {
		return
	}
	if h != nil {
		h.screen.Fini()
	}
	log.Printf("crash: %v\n%s", r, debug.Stack())
	fmt.Fprintf(os.Stderr, "\n\x1b[31mMUSEUM CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
	os.Exit(1)
}
