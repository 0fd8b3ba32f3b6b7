package remote

import "encoding/json"

// Client message types
const (
	MsgTouch = "touch"
	MsgKey   = "key"
)

// Server message types
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
)

type clientEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type serverEnvelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// TouchMessage is one pointer sample from a controller page
type TouchMessage struct {
	Phase  string  `json:"phase"` // start, move, end, cancel
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Active []int   `json:"active,omitempty"`
}

// KeyMessage presses or releases a named key
type KeyMessage struct {
	Key  string `json:"key"`
	Down bool   `json:"down"`
}

// Welcome is sent once after the upgrade
type Welcome struct {
	SessionID    string   `json:"session_id"`
	Destinations []string `json:"destinations,omitempty"`
}

// State mirrors what the host is showing
type State struct {
	Phase    string `json:"phase"`
	Captured bool   `json:"captured"`
	Prompt   string `json:"prompt,omitempty"`
	Near     string `json:"near,omitempty"`
}
