package event

// ArtworkPayload selects the artwork to show
type ArtworkPayload struct {
	ArtworkID string
}

// TeleportPayload addresses a destination by its zero-based slot
type TeleportPayload struct {
	Slot int
}

// CameraTeleportPayload is an absolute camera pose
type CameraTeleportPayload struct {
	X, Y, Z float64
	Yaw     float64
}

// PhaseChangedPayload carries phase names to keep this package free of engine types
type PhaseChangedPayload struct {
	From string
	To   string
}

// ProximityChangedPayload describes the new proximity identity
// ArtworkID is empty when no artwork is near
type ProximityChangedPayload struct {
	ArtworkID  string
	NearAvatar bool
}

// CaptureChangedPayload reports the capture state after a change
type CaptureChangedPayload struct {
	Captured bool
}

// RemotePeerPayload identifies a remote controller session
type RemotePeerPayload struct {
	SessionID string
}

// Touch phases carried by RemoteTouchPayload
const (
	TouchStart  = "start"
	TouchMove   = "move"
	TouchEnd    = "end"
	TouchCancel = "cancel"
)

// RemoteTouchPayload is a joystick touch relayed from a remote controller
type RemoteTouchPayload struct {
	SessionID string
	Phase     string
	TouchID   int
	X, Y      float64
	Active    []int
}

// RemoteKeyPayload is a key transition relayed from a remote controller
type RemoteKeyPayload struct {
	SessionID string
	Key       string
	Down      bool
}
