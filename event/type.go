package event

// EventType represents the type of museum event
type EventType int

const (
	// EventNone is the zero value, never dispatched
	EventNone EventType = iota

	// === Phase Commands ===

	// EventEnter leaves the entry screen
	// Trigger: Enter key, entry button | Consumer: phase FSM | Payload: nil
	EventEnter

	// EventOpenArtwork opens the content modal
	// Trigger: interact near artwork, click on artwork
	// Consumer: phase FSM | Payload: *ArtworkPayload
	EventOpenArtwork

	// EventCloseModal closes the content modal
	// Trigger: Escape, secondary click, backdrop click | Consumer: phase FSM | Payload: nil
	EventCloseModal

	// EventOpenAvatar opens the bio dialog
	// Trigger: interact near avatar, click on avatar | Consumer: phase FSM | Payload: nil
	EventOpenAvatar

	// EventCloseAvatar closes the bio dialog
	// Trigger: same dismissal gestures as the modal | Consumer: phase FSM | Payload: nil
	EventCloseAvatar

	// EventTeleport jumps to a configured destination from any phase
	// Trigger: digit keys | Consumer: phase FSM | Payload: *TeleportPayload
	EventTeleport

	// === Camera Commands ===

	// EventCameraTeleport sets an absolute camera pose and releases capture
	// Trigger: engine after a teleport transition
	// Consumer: view.Controller | Payload: *CameraTeleportPayload
	EventCameraTeleport

	// === Notifications ===

	// EventPhaseChanged reports a phase transition after it completed
	// Consumer: hosts, audio, remote | Payload: *PhaseChangedPayload
	EventPhaseChanged

	// EventProximityChanged reports a nearest-target identity change
	// Consumer: hosts, audio | Payload: *ProximityChangedPayload
	EventProximityChanged

	// EventCaptureChanged reports a pointer capture state change
	// Consumer: engine, hosts | Payload: *CaptureChangedPayload
	EventCaptureChanged

	// === Remote Input ===

	// EventRemoteConnect signals a new remote controller session
	// Trigger: remote bridge | Consumer: engine | Payload: *RemotePeerPayload
	EventRemoteConnect

	// EventRemoteDisconnect signals a closed remote controller session
	// Trigger: remote bridge | Consumer: engine | Payload: *RemotePeerPayload
	EventRemoteDisconnect

	// EventRemoteTouch carries a joystick touch from a remote controller
	// Trigger: remote bridge | Consumer: engine | Payload: *RemoteTouchPayload
	EventRemoteTouch

	// EventRemoteKey carries a key press or release from a remote controller
	// Trigger: remote bridge | Consumer: engine | Payload: *RemoteKeyPayload
	EventRemoteKey
)

// GameEvent is a single queued or dispatched event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
