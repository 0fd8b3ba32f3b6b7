package host

import (
	"sort"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/input"
)

// TouchPoint is one finger reported by a polling host
type TouchPoint struct {
	ID   int
	X, Y float64
}

// PollState is the device state a polling host reads once per frame
// Key lists hold edges only; Touches holds every finger currently down
type PollState struct {
	Pressed  []input.Key
	Released []input.Key

	CursorX, CursorY float64
	PrimaryDown      bool // Pressed this frame
	SecondaryDown    bool

	Captured bool // Platform reports pointer capture
	Focused  bool

	Touches []TouchPoint
}

// Translator turns successive poll states into input events
// Hosts without an event stream (game loops) derive edges and deltas here
type Translator struct {
	// Pick resolves the click target under a screen position
	Pick func(x, y float64) string

	lastX, lastY float64
	lastValid    bool
	expectCap    bool
	focused      bool
	touches      map[int]TouchPoint
}

// NewTranslator returns a translator for a focused window
func NewTranslator() *Translator {
	return &Translator{focused: true, touches: make(map[int]TouchPoint)}
}

// Expect records the capture state the host asked for
// A capture the platform drops without being asked is reported as lost
func (t *Translator) Expect(captured bool) {
	t.expectCap = captured
	t.lastValid = false
}

// Translate diffs s against the previous state
func (t *Translator) Translate(s PollState) []input.Event {
	var out []input.Event

	if t.focused && !s.Focused {
		out = append(out, input.Event{Type: input.EventBlur})
	}
	t.focused = s.Focused

	if t.expectCap && !s.Captured {
		t.expectCap = false
		out = append(out, input.Event{Type: input.EventCaptureLost})
	}

	for _, k := range s.Pressed {
		out = append(out, input.Event{Type: input.EventKeyDown, Key: k})
	}
	for _, k := range s.Released {
		out = append(out, input.Event{Type: input.EventKeyUp, Key: k})
	}

	if s.Captured && t.lastValid {
		dx, dy := s.CursorX-t.lastX, s.CursorY-t.lastY
		if dx != 0 || dy != 0 {
			out = append(out, input.Event{Type: input.EventPointerMove, DX: dx, DY: dy})
		}
	}
	t.lastX, t.lastY, t.lastValid = s.CursorX, s.CursorY, true

	if s.PrimaryDown {
		target := ""
		if t.Pick != nil {
			target = t.Pick(s.CursorX, s.CursorY)
		}
		out = append(out, input.Event{Type: input.EventPrimaryClick, Target: target, X: s.CursorX, Y: s.CursorY})
	}
	if s.SecondaryDown {
		out = append(out, input.Event{Type: input.EventSecondaryClick, X: s.CursorX, Y: s.CursorY})
	}

	return append(out, t.touchEvents(s.Touches)...)
}

func (t *Translator) touchEvents(touches []TouchPoint) []input.Event {
	var out []input.Event
	seen := make(map[int]bool, len(touches))
	for _, tp := range touches {
		seen[tp.ID] = true
		prev, ok := t.touches[tp.ID]
		switch {
		case !ok:
			out = append(out, input.Event{Type: input.EventTouchStart, TouchID: tp.ID, X: tp.X, Y: tp.Y})
		case prev.X != tp.X || prev.Y != tp.Y:
			out = append(out, input.Event{Type: input.EventTouchMove, TouchID: tp.ID, X: tp.X, Y: tp.Y})
		}
		t.touches[tp.ID] = tp
	}

	ended := false
	for id := range t.touches {
		if !seen[id] {
			delete(t.touches, id)
			ended = true
		}
	}
	if ended {
		remaining := make([]int, 0, len(t.touches))
		for id := range t.touches {
			remaining = append(remaining, id)
		}
		sort.Ints(remaining)
		out = append(out, input.Event{Type: input.EventTouchEnd, Touches: remaining})
	}
	return out
}

// ClickTarget resolves a primary click the way a pointer ray would
// Overlays split panel from backdrop; with capture the crosshair hits the actionable target;
// otherwise the map under the pointer is searched
func ClickTarget(p engine.Presentation, inPanel bool, actionable string, pick func() string) string {
	switch {
	case p.Overlay != engine.OverlayNone:
		if inPanel {
			return "panel"
		}
		return input.TargetBackdrop
	case p.Captured:
		return actionable
	case pick != nil:
		return pick()
	}
	return ""
}
