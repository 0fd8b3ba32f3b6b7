package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/input"
	"github.com/lixenwraith/museum/parameter"
	"github.com/lixenwraith/museum/scene"
	"github.com/lixenwraith/museum/status"
)

func newTestHost(t *testing.T) (*Host, *engine.Museum, *engine.MockTimeProvider, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	mock := engine.NewMockTimeProvider(time.Unix(1000, 0))
	reg := status.NewRegistry()
	h := New(screen, Options{Time: mock, Registry: reg, Debug: true})
	m, err := engine.New(scene.Default(), engine.Options{Platform: h, Registry: reg})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(m.Close)
	h.Attach(m)
	return h, m, mock, screen
}

func key(k tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(k, r, tcell.ModNone)
}

func click(h *Host, x, y int, btn tcell.ButtonMask) {
	h.HandleEvent(tcell.NewEventMouse(x, y, btn, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

func findRune(s tcell.Screen, want rune) bool {
	w, h := s.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r, _, _, _ := s.GetContent(x, y); r == want {
				return true
			}
		}
	}
	return false
}

func TestEntryClickAndCapture(t *testing.T) {
	h, m, _, _ := newTestHost(t)

	click(h, 5, 5, tcell.ButtonPrimary)
	if m.Phase() != engine.PhaseExploring {
		t.Fatalf("phase = %v", m.Phase())
	}
	click(h, 0, 0, tcell.ButtonPrimary)
	if !m.Captured() {
		t.Fatal("click on the floor did not capture")
	}

	// Mouse motion turns the camera while captured
	h.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventMouse(12, 10, tcell.ButtonNone, tcell.ModNone))
	if yaw := m.Pose().Yaw; yaw >= 0 {
		t.Errorf("yaw = %v, want negative after moving right", yaw)
	}

	h.HandleEvent(tcell.NewEventFocus(false))
	if m.Captured() {
		t.Error("focus loss kept capture")
	}
}

func cursorShown(s tcell.SimulationScreen) bool {
	x, y, vis := s.GetCursor()
	return vis && x >= 0 && y >= 0
}

func TestReleaseRestoresCursor(t *testing.T) {
	h, m, _, screen := newTestHost(t)

	click(h, 5, 5, tcell.ButtonPrimary)
	click(h, 0, 0, tcell.ButtonPrimary)
	if !m.Captured() {
		t.Fatal("not captured")
	}
	if cursorShown(screen) {
		t.Error("cursor visible while captured")
	}

	h.HandleEvent(key(tcell.KeyTab, 0))
	if m.Captured() {
		t.Fatal("tab kept capture")
	}
	if !cursorShown(screen) {
		t.Error("cursor still hidden after release")
	}
	if x, y, _ := screen.GetCursor(); x != 0 || y != 0 {
		t.Errorf("cursor at %d,%d, want 0,0", x, y)
	}
}

func TestStaleMotionIgnoredAfterCaptureLoss(t *testing.T) {
	h, m, _, _ := newTestHost(t)

	click(h, 5, 5, tcell.ButtonPrimary)
	click(h, 0, 0, tcell.ButtonPrimary)
	h.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	h.HandleEvent(tcell.NewEventFocus(false))
	if m.Captured() {
		t.Fatal("focus loss kept capture")
	}

	// Motion while released never turns the camera, nor does the recapture click
	yaw := m.Pose().Yaw
	h.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone))
	click(h, 0, 0, tcell.ButtonPrimary)
	if !m.Captured() {
		t.Fatal("recapture failed")
	}
	if m.Pose().Yaw != yaw {
		t.Errorf("yaw moved from %v to %v across recapture", yaw, m.Pose().Yaw)
	}

	h.HandleEvent(tcell.NewEventMouse(2, 0, tcell.ButtonNone, tcell.ModNone))
	if m.Pose().Yaw >= yaw {
		t.Errorf("yaw = %v, want below %v after moving right", m.Pose().Yaw, yaw)
	}
}

func TestHeldKeyReleasedAfterTimeout(t *testing.T) {
	h, m, mock, _ := newTestHost(t)
	h.HandleEvent(key(tcell.KeyEnter, 0))
	click(h, 0, 0, tcell.ButtonPrimary)

	h.HandleEvent(key(tcell.KeyRune, 'W'))
	if !m.Input().IsPressed(input.KeyW) {
		t.Fatal("W not pressed")
	}
	start := m.Pose().Position.Z

	mock.Advance(100 * time.Millisecond)
	h.Frame() // first clock reading
	mock.Advance(100 * time.Millisecond)
	h.Frame()
	if m.Pose().Position.Z >= start {
		t.Errorf("no forward motion: z %v -> %v", start, m.Pose().Position.Z)
	}

	mock.Advance(parameter.KeyHoldInitialTimeout)
	h.Frame()
	if m.Input().IsPressed(input.KeyW) {
		t.Error("W still pressed after hold timeout")
	}
}

func TestOneShotKeys(t *testing.T) {
	h, m, _, _ := newTestHost(t)
	h.HandleEvent(key(tcell.KeyEnter, 0))
	h.HandleEvent(key(tcell.KeyRune, '2'))

	want, _ := m.Scene().Destination(1)
	if m.Pose().Position != want.Position {
		t.Errorf("pose = %+v, want %+v", m.Pose().Position, want.Position)
	}
	if m.Input().IsPressed(input.KeyDigit2) {
		t.Error("one-shot key left pressed")
	}
}

func TestOverlayBackdropClick(t *testing.T) {
	h, m, _, screen := newTestHost(t)
	h.HandleEvent(key(tcell.KeyEnter, 0))
	m.OpenArtwork("experience")
	h.Frame()

	if !findRune(screen, '┌') {
		t.Fatal("panel not drawn")
	}
	panel := h.layout.panel
	click(h, panel.x+2, panel.y+1, tcell.ButtonPrimary)
	if m.Phase() != engine.PhaseModal {
		t.Fatalf("click inside panel closed it: %v", m.Phase())
	}
	click(h, 0, 0, tcell.ButtonPrimary)
	if m.Phase() != engine.PhaseExploring {
		t.Errorf("backdrop click phase = %v", m.Phase())
	}
}

func TestDrawMap(t *testing.T) {
	h, _, _, screen := newTestHost(t)
	h.Frame()
	if findRune(screen, '↑') {
		t.Error("map drawn on the entry screen")
	}

	h.HandleEvent(key(tcell.KeyEnter, 0))
	click(h, 0, 0, tcell.ButtonPrimary) // capture hides the resume box
	h.Frame()
	if !h.layout.valid {
		t.Fatal("layout invalid at 120x40")
	}
	for _, r := range []rune{'↑', '☺', '▣'} {
		if !findRune(screen, r) {
			t.Errorf("%c not drawn", r)
		}
	}
}

func TestQuitKeys(t *testing.T) {
	h, _, _, _ := newTestHost(t)
	if !h.HandleEvent(key(tcell.KeyCtrlC, 0)) {
		t.Error("Ctrl-C did not quit")
	}
	if h.HandleEvent(key(tcell.KeyRune, 'q')) {
		t.Error("q must be a movement key")
	}
}
