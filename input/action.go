package input

// Action is the semantic meaning bound to a key
type Action uint8

const (
	ActionNone Action = iota

	// Held actions, polled every tick
	ActionForward
	ActionBackward
	ActionLeft
	ActionRight

	// Edge-triggered actions
	ActionInteract
	ActionReleaseCapture
	ActionDismiss
	ActionTeleport
	ActionEnter
)

// KeyEntry describes a key binding; Slot is meaningful for ActionTeleport only
type KeyEntry struct {
	Action Action
	Slot   int
}

// Held reports whether the action is continuous rather than edge-triggered
func (a Action) Held() bool {
	return a >= ActionForward && a <= ActionRight
}

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionForward:        "forward",
	ActionBackward:       "backward",
	ActionLeft:           "left",
	ActionRight:          "right",
	ActionInteract:       "interact",
	ActionReleaseCapture: "release_capture",
	ActionDismiss:        "dismiss",
	ActionTeleport:       "teleport",
	ActionEnter:          "enter",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// actionRegistry maps canonical action names to bindings
// Teleport slots are addressed as "teleport_1" .. "teleport_9" (1-based, as shown to users)
var actionRegistry map[string]KeyEntry

func init() {
	actionRegistry = make(map[string]KeyEntry, len(actionNames)+9)
	for a, name := range actionNames {
		if a == ActionTeleport {
			continue
		}
		actionRegistry[name] = KeyEntry{Action: a}
	}
	for slot := 0; slot < 9; slot++ {
		actionRegistry["teleport_"+string(rune('1'+slot))] = KeyEntry{Action: ActionTeleport, Slot: slot}
	}
}

// ActionEntry resolves a canonical action name
func ActionEntry(name string) (KeyEntry, bool) {
	e, ok := actionRegistry[name]
	return e, ok
}
