package input

import (
	"github.com/lixenwraith/museum/vmath"
)

// Gate carries the application context that decides which intents may fire
type Gate struct {
	SceneVisible  bool // Past the entry screen
	OverlayOpen   bool // Modal or avatar dialog mounted
	CaptureActive bool
}

// Aggregator normalizes keyboard, pointer and touch events into intents
// It writes key and joystick state; it never touches the scene
type Aggregator struct {
	state *State
	table *KeyTable
}

// NewAggregator creates an aggregator over state using the default key table
func NewAggregator(state *State) *Aggregator {
	return &Aggregator{
		state: state,
		table: DefaultKeyTable(),
	}
}

// State returns the backing input state
func (a *Aggregator) State() *State {
	return a.state
}

// SetKeyTable replaces the key bindings; nil restores defaults
func (a *Aggregator) SetKeyTable(kt *KeyTable) {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	a.table = kt
}

// KeyTable returns the active bindings
func (a *Aggregator) KeyTable() *KeyTable {
	return a.table
}

// Process consumes one event and returns at most one discrete intent, or nil
func (a *Aggregator) Process(ev Event, g Gate) *Intent {
	switch ev.Type {
	case EventKeyDown:
		a.state.Press(ev.Key)
		if ev.Repeat {
			return nil
		}
		return a.keyIntent(a.table.Lookup(ev.Key), g)

	case EventKeyUp:
		a.state.Release(ev.Key)
		return nil

	case EventPointerMove:
		if g.CaptureActive && !g.OverlayOpen {
			return &Intent{Type: IntentLook, DX: ev.DX, DY: ev.DY}
		}
		return nil

	case EventPrimaryClick:
		return a.primaryClick(ev.Target, g)

	case EventSecondaryClick:
		// Swallowed outside overlays; never releases capture
		if g.OverlayOpen {
			return &Intent{Type: IntentDismiss}
		}
		return nil

	case EventTouchStart:
		if g.SceneVisible {
			a.state.Joystick.Begin(ev.TouchID, ev.X, ev.Y)
		}
		return nil

	case EventTouchMove:
		a.state.Joystick.Move(ev.TouchID, ev.X, ev.Y)
		return nil

	case EventTouchEnd:
		a.state.Joystick.End(ev.Touches)
		return nil

	case EventTouchCancel:
		a.state.Joystick.Cancel(ev.TouchID, ev.Touches)
		return nil

	case EventCaptureLost:
		return &Intent{Type: IntentCaptureLost}

	case EventBlur:
		a.state.ClearKeys()
		a.state.Joystick.Reset()
		if g.CaptureActive {
			return &Intent{Type: IntentCaptureLost}
		}
		return nil
	}
	return nil
}

func (a *Aggregator) keyIntent(entry KeyEntry, g Gate) *Intent {
	switch entry.Action {
	case ActionEnter:
		if !g.SceneVisible {
			return &Intent{Type: IntentEnter}
		}

	case ActionInteract:
		if g.SceneVisible && g.CaptureActive && !g.OverlayOpen {
			return &Intent{Type: IntentInteract}
		}

	case ActionTeleport:
		if g.SceneVisible && !g.OverlayOpen {
			return &Intent{Type: IntentTeleport, Slot: entry.Slot}
		}

	case ActionReleaseCapture:
		if g.SceneVisible {
			return &Intent{Type: IntentReleaseCapture}
		}

	case ActionDismiss:
		if g.OverlayOpen {
			return &Intent{Type: IntentDismiss}
		}
		if g.CaptureActive {
			return &Intent{Type: IntentReleaseCapture}
		}
	}
	return nil
}

func (a *Aggregator) primaryClick(target string, g Gate) *Intent {
	if !g.SceneVisible {
		return nil
	}
	if g.OverlayOpen {
		if target == TargetBackdrop {
			return &Intent{Type: IntentDismiss}
		}
		return nil
	}
	if target != "" && target != TargetBackdrop {
		return &Intent{Type: IntentOpenTarget, Target: target}
	}
	if !g.CaptureActive {
		return &Intent{Type: IntentAcquireCapture}
	}
	return nil
}

// Direction returns the camera-local movement intent: X right, Z backward, Y zero
// Keyboard directions are OR-combined across bindings; a non-zero joystick
// axis replaces the keyboard value on that axis. Length never exceeds 1
func (a *Aggregator) Direction() vmath.Vec3F {
	var fwd, bwd, left, right bool
	for k, entry := range a.table.Keys {
		if !entry.Action.Held() || !a.state.IsPressed(k) {
			continue
		}
		switch entry.Action {
		case ActionForward:
			fwd = true
		case ActionBackward:
			bwd = true
		case ActionLeft:
			left = true
		case ActionRight:
			right = true
		}
	}

	var dir vmath.Vec3F
	dir.X = boolAxis(right) - boolAxis(left)
	dir.Z = boolAxis(bwd) - boolAxis(fwd)

	joy := a.state.Joystick.Vector()
	if joy.X != 0 {
		dir.X = joy.X
	}
	if joy.Y != 0 {
		dir.Z = joy.Y
	}

	return vmath.V3FCapMag(dir, 1)
}

func boolAxis(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
