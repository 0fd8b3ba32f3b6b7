package input

// State is the continuously overwritten input snapshot
// Hosts write it through the Aggregator; the capture flag is written by the view controller only
type State struct {
	pressed  [keyCount]bool
	Joystick Joystick

	captureActive bool
}

// NewState creates an empty input state with the default joystick geometry
func NewState() *State {
	return &State{Joystick: NewJoystick()}
}

// Press marks a key held
func (s *State) Press(k Key) {
	if k < keyCount {
		s.pressed[k] = true
	}
}

// Release marks a key up
func (s *State) Release(k Key) {
	if k < keyCount {
		s.pressed[k] = false
	}
}

// IsPressed reports whether a key is currently held
func (s *State) IsPressed(k Key) bool {
	return k < keyCount && s.pressed[k]
}

// ClearKeys drops all held keys, used on blur so movement does not stick
func (s *State) ClearKeys() {
	s.pressed = [keyCount]bool{}
}

// CaptureActive reports the mirrored capture flag
func (s *State) CaptureActive() bool {
	return s.captureActive
}

// SetCaptureActive mirrors the view controller capture state
func (s *State) SetCaptureActive(active bool) {
	s.captureActive = active
}

// Reset returns the state to its freshly mounted condition
func (s *State) Reset() {
	s.ClearKeys()
	s.Joystick.Reset()
	s.captureActive = false
}
