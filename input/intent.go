package input

// IntentType discriminates discrete semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentEnter          // Leave the entry screen
	IntentInteract       // Open whatever is actionable nearby
	IntentTeleport       // Jump to destination Slot
	IntentReleaseCapture // Voluntary capture release (Tab, M)
	IntentDismiss        // Close the open overlay
	IntentCaptureLost    // Capture ended by the platform (focus change, browser Escape)
	IntentAcquireCapture // Click into the scene
	IntentOpenTarget     // Click directly on an artwork or the avatar
	IntentLook           // Pointer delta while captured
)

// Intent is the output of the aggregator for discrete events
// Continuous movement is polled separately via Aggregator.Direction
type Intent struct {
	Type   IntentType
	Slot   int
	Target string
	DX, DY float64
}

var intentNames = map[IntentType]string{
	IntentNone:           "none",
	IntentEnter:          "enter",
	IntentInteract:       "interact",
	IntentTeleport:       "teleport",
	IntentReleaseCapture: "release_capture",
	IntentDismiss:        "dismiss",
	IntentCaptureLost:    "capture_lost",
	IntentAcquireCapture: "acquire_capture",
	IntentOpenTarget:     "open_target",
	IntentLook:           "look",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}
