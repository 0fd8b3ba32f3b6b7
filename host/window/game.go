// Package window runs the museum in a desktop or browser window through ebiten.
// Pointer capture maps onto ebiten's captured cursor mode; touches feed the joystick.
package window

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/host"
	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/status"
)

// Options configures a window host
type Options struct {
	Time          engine.TimeSource
	FrameInterval time.Duration
	Width         int
	Height        int
	Debug         bool
	Registry      *status.Registry
}

// Game implements ebiten.Game and view.Platform
type Game struct {
	opts  Options
	clock *engine.Clock
	tr    *host.Translator
	m     *engine.Museum

	w, h int
	lay  layout

	// Reused poll buffers
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID
}

// New creates a window host; Attach must be called before Run
func New(opts Options) *Game {
	if opts.Time == nil {
		opts.Time = engine.NewTimeProvider()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = parameter.FrameUpdateInterval
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	g := &Game{
		opts:  opts,
		clock: engine.NewClock(opts.Time),
		tr:    host.NewTranslator(),
		w:     opts.Width,
		h:     opts.Height,
	}
	g.tr.Pick = g.pick
	return g
}

// Attach binds the museum the host drives; the museum must use g as its Platform
func (g *Game) Attach(m *engine.Museum) {
	g.m = m
}

// Run opens the window and blocks until it closes
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(engine.EntryTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(max(1, int(time.Second/g.opts.FrameInterval)))
	return ebiten.RunGame(g)
}

// === view.Platform ===

// Supported implements view.Platform
func (g *Game) Supported() bool { return true }

// Acquire implements view.Platform
func (g *Game) Acquire() bool {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.tr.Expect(true)
	return true
}

// Release implements view.Platform
func (g *Game) Release() {
	g.tr.Expect(false)
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
}

// === ebiten.Game ===

// Update polls devices and ticks the museum
func (g *Game) Update() error {
	if g.m == nil || ebiten.IsWindowBeingClosed() || g.m.Closed() {
		return ebiten.Termination
	}
	s := g.poll()
	if s.PrimaryDown && g.m.Phase() == engine.PhaseEntry {
		s.PrimaryDown = false
		g.m.Enter()
	}
	for _, ev := range g.tr.Translate(s) {
		g.m.HandleInput(ev)
	}
	g.clock.Step(g.m)
	return nil
}

// Layout keeps one logical pixel per window pixel
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) poll() host.PollState {
	var s host.PollState

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	s.Pressed = translateKeys(nil, g.keys)
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	s.Released = translateKeys(nil, g.keys)

	x, y := ebiten.CursorPosition()
	s.CursorX, s.CursorY = float64(x), float64(y)
	s.PrimaryDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.SecondaryDown = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	s.Captured = ebiten.CursorMode() == ebiten.CursorModeCaptured
	s.Focused = ebiten.IsFocused()

	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, host.TouchPoint{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	return s
}

func (g *Game) pick(x, y float64) string {
	return host.ClickTarget(g.m.Presentation(), g.lay.panel.contains(x, y), host.ActionableID(g.m.Proximity()), func() string {
		return g.lay.proj.Pick(g.m.Scene(), x, y, 18)
	})
}
