package fsm

import "github.com/lixenwraith/museum/event"

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `yaml:"initial"`
	States       map[string]*StateConfig `yaml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent      string             `yaml:"parent,omitempty"`
	OnEnter     []ActionConfig     `yaml:"on_enter,omitempty"`
	OnUpdate    []ActionConfig     `yaml:"on_update,omitempty"`
	OnExit      []ActionConfig     `yaml:"on_exit,omitempty"`
	Transitions []TransitionConfig `yaml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger string `yaml:"trigger"`         // Event name or "Tick"
	Target  string `yaml:"target"`          // Target state name
	Guard   string `yaml:"guard,omitempty"` // Registered guard name
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action string `yaml:"action"`          // Registered action name
	Event  string `yaml:"event,omitempty"` // For EmitEvent: event name
}

// EmitEventArgs is the compiled argument of the EmitEvent action
type EmitEventArgs struct {
	Type event.EventType
}
