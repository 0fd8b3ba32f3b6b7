package host

import (
	"slices"
	"testing"

	"github.com/lixenwraith/museum/engine"
	"github.com/lixenwraith/museum/input"
)

func types(evs []input.Event) []input.EventType {
	out := make([]input.EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func TestTranslatorPointer(t *testing.T) {
	tr := NewTranslator()
	tr.Pick = func(x, y float64) string { return "experience" }

	// First reading only seeds the cursor
	evs := tr.Translate(PollState{Focused: true, Captured: true, CursorX: 100, CursorY: 50})
	if len(evs) != 0 {
		t.Fatalf("seed produced %v", types(evs))
	}

	evs = tr.Translate(PollState{Focused: true, Captured: true, CursorX: 110, CursorY: 45, PrimaryDown: true})
	want := []input.EventType{input.EventPointerMove, input.EventPrimaryClick}
	if !slices.Equal(types(evs), want) {
		t.Fatalf("events = %v, want %v", types(evs), want)
	}
	if evs[0].DX != 10 || evs[0].DY != -5 {
		t.Errorf("delta = (%v, %v)", evs[0].DX, evs[0].DY)
	}
	if evs[1].Target != "experience" {
		t.Errorf("target = %q", evs[1].Target)
	}

	// Released pointer moves are not look input
	evs = tr.Translate(PollState{Focused: true, CursorX: 300, CursorY: 300})
	if len(evs) != 0 {
		t.Errorf("uncaptured move produced %v", types(evs))
	}
}

func TestTranslatorCaptureLost(t *testing.T) {
	tr := NewTranslator()
	tr.Expect(true)

	evs := tr.Translate(PollState{Focused: true, Captured: true})
	if len(evs) != 0 {
		t.Fatalf("held capture produced %v", types(evs))
	}
	evs = tr.Translate(PollState{Focused: true})
	if !slices.Equal(types(evs), []input.EventType{input.EventCaptureLost}) {
		t.Fatalf("events = %v", types(evs))
	}
	// Reported once
	if evs = tr.Translate(PollState{Focused: true}); len(evs) != 0 {
		t.Errorf("repeat produced %v", types(evs))
	}

	tr.Expect(true)
	tr.Expect(false)
	if evs = tr.Translate(PollState{Focused: true}); len(evs) != 0 {
		t.Errorf("requested release reported as lost: %v", types(evs))
	}
}

func TestTranslatorBlurAndKeys(t *testing.T) {
	tr := NewTranslator()
	evs := tr.Translate(PollState{
		Pressed:  []input.Key{input.KeyW},
		Released: []input.Key{input.KeyE},
	})
	want := []input.EventType{input.EventBlur, input.EventKeyDown, input.EventKeyUp}
	if !slices.Equal(types(evs), want) {
		t.Fatalf("events = %v, want %v", types(evs), want)
	}
	if evs[1].Key != input.KeyW || evs[2].Key != input.KeyE {
		t.Errorf("keys = %v, %v", evs[1].Key, evs[2].Key)
	}
	if evs = tr.Translate(PollState{}); len(evs) != 0 {
		t.Errorf("blur repeated: %v", types(evs))
	}
}

func TestTranslatorTouches(t *testing.T) {
	tr := NewTranslator()
	steps := []struct {
		name    string
		touches []TouchPoint
		want    []input.EventType
	}{
		{"start", []TouchPoint{{ID: 3, X: 100, Y: 500}}, []input.EventType{input.EventTouchStart}},
		{"still", []TouchPoint{{ID: 3, X: 100, Y: 500}}, nil},
		{"move and second", []TouchPoint{{ID: 3, X: 100, Y: 450}, {ID: 4, X: 600, Y: 300}},
			[]input.EventType{input.EventTouchMove, input.EventTouchStart}},
		{"first lifted", []TouchPoint{{ID: 4, X: 600, Y: 300}}, []input.EventType{input.EventTouchEnd}},
		{"all lifted", nil, []input.EventType{input.EventTouchEnd}},
	}
	for _, st := range steps {
		evs := tr.Translate(PollState{Focused: true, Touches: st.touches})
		if !slices.Equal(types(evs), st.want) {
			t.Errorf("%s: events = %v, want %v", st.name, types(evs), st.want)
			continue
		}
		if st.name == "first lifted" && !slices.Equal(evs[0].Touches, []int{4}) {
			t.Errorf("remaining = %v", evs[0].Touches)
		}
	}
}

func TestClickTarget(t *testing.T) {
	pick := func() string { return "projects" }
	tests := []struct {
		name    string
		p       engine.Presentation
		inPanel bool
		want    string
	}{
		{"panel", engine.Presentation{Overlay: engine.OverlayArtwork}, true, "panel"},
		{"backdrop", engine.Presentation{Overlay: engine.OverlayAvatar}, false, input.TargetBackdrop},
		{"crosshair", engine.Presentation{Captured: true}, false, "avatar"},
		{"map", engine.Presentation{}, false, "projects"},
	}
	for _, tt := range tests {
		if got := ClickTarget(tt.p, tt.inPanel, "avatar", pick); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}
