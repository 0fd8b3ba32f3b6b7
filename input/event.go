package input

// EventType discriminates platform-neutral input events
type EventType uint8

const (
	EventNone EventType = iota

	EventKeyDown // Key pressed; Repeat set for auto-repeat
	EventKeyUp   // Key released

	EventPointerMove    // Raw pointer delta (DX, DY)
	EventPrimaryClick   // Left click; Target holds the hit target id or is empty
	EventSecondaryClick // Right click / long press

	EventTouchStart  // Finger down (TouchID, X, Y)
	EventTouchMove   // Finger moved
	EventTouchEnd    // Finger lifted; Touches lists ids still down
	EventTouchCancel // Touch aborted by platform

	EventCaptureLost // Platform released pointer capture (Escape, focus change)
	EventBlur        // Window lost focus; held keys are dropped
)

// TargetBackdrop is the click target id of the area outside an overlay panel
const TargetBackdrop = "backdrop"

// Event is a single normalized input event produced by a host
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool

	// Pointer delta in pixels
	DX, DY float64

	// Touch position in pixels
	X, Y    float64
	TouchID int
	Touches []int

	Target string
}

var eventTypeNames = map[EventType]string{
	EventNone:           "none",
	EventKeyDown:        "key_down",
	EventKeyUp:          "key_up",
	EventPointerMove:    "pointer_move",
	EventPrimaryClick:   "primary_click",
	EventSecondaryClick: "secondary_click",
	EventTouchStart:     "touch_start",
	EventTouchMove:      "touch_move",
	EventTouchEnd:       "touch_end",
	EventTouchCancel:    "touch_cancel",
	EventCaptureLost:    "capture_lost",
	EventBlur:           "blur",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
